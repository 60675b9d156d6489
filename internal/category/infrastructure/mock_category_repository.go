package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/sebuszqo/CategoryService/internal/category/domain"
)

// MockCategoryRepository keeps categories in memory. Err, when set, is returned by every call.
type MockCategoryRepository struct {
	mu         sync.Mutex
	Categories map[string]domain.Category
	Err        error
}

func NewMockCategoryRepository(categories ...domain.Category) *MockCategoryRepository {
	m := &MockCategoryRepository{Categories: make(map[string]domain.Category)}
	for _, category := range categories {
		m.Categories[category.CategoryID] = category
	}
	return m
}

func (m *MockCategoryRepository) Create(_ context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.Categories[category.CategoryID]; exists {
		return domain.ErrDuplicateCategory
	}
	m.Categories[category.CategoryID] = *category
	return nil
}

func (m *MockCategoryRepository) FindByID(_ context.Context, categoryID string) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	category, exists := m.Categories[categoryID]
	if !exists {
		return nil, domain.ErrNoCategory
	}
	return &category, nil
}

func (m *MockCategoryRepository) FindByOwner(_ context.Context, userID string) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.OwnerUserID == userID {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CategoryName < categories[j].CategoryName
	})
	return categories, nil
}

func (m *MockCategoryRepository) Update(_ context.Context, category *domain.Category) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	if _, exists := m.Categories[category.CategoryID]; !exists {
		return 0, nil
	}
	m.Categories[category.CategoryID] = *category
	return 1, nil
}

func (m *MockCategoryRepository) Delete(_ context.Context, categoryID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	if _, exists := m.Categories[categoryID]; !exists {
		return 0, nil
	}
	delete(m.Categories, categoryID)
	return 1, nil
}
