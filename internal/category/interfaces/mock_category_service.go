package interfaces

import (
	"context"

	"github.com/sebuszqo/CategoryService/internal/category/domain"
)

type MockCategoryService struct {
	category   *domain.Category
	categories []domain.Category
	err        error

	gotCategory domain.Category
	gotID       string
}

func (m *MockCategoryService) CreateCategory(_ context.Context, category domain.Category) (*domain.Category, error) {
	m.gotCategory = category
	if m.err != nil {
		return nil, m.err
	}
	return &category, nil
}

func (m *MockCategoryService) DeleteCategory(_ context.Context, categoryID string) error {
	m.gotID = categoryID
	return m.err
}

func (m *MockCategoryService) UpdateCategory(_ context.Context, category domain.Category, categoryID string) (*domain.Category, error) {
	m.gotCategory = category
	m.gotID = categoryID
	if m.err != nil {
		return nil, m.err
	}
	return m.category, nil
}

func (m *MockCategoryService) GetAllCategoryByUserID(_ context.Context, userID string) ([]domain.Category, error) {
	m.gotID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *MockCategoryService) GetCategoryByID(_ context.Context, categoryID string) (*domain.Category, error) {
	m.gotID = categoryID
	if m.err != nil {
		return nil, m.err
	}
	return m.category, nil
}
