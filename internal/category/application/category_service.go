package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sebuszqo/CategoryService/internal/auth"
	"github.com/sebuszqo/CategoryService/internal/category/domain"
	categoryErrors "github.com/sebuszqo/CategoryService/internal/category/errors"
	"github.com/sirupsen/logrus"
)

type CategoryService struct {
	repo domain.CategoryRepository
	log  *logrus.Logger
	now  func() time.Time
}

func NewCategoryService(repo domain.CategoryRepository, logger *logrus.Logger) *CategoryService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &CategoryService{
		repo: repo,
		log:  logger,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if category.CategoryID == "" {
		category.CategoryID = uuid.NewString()
	}
	if category.OwnerUserID == "" {
		if userID, ok := auth.UserIDFromContext(ctx); ok {
			category.OwnerUserID = userID
		}
	}
	category.CreationDate = s.now()

	err := s.repo.Create(ctx, &category)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCategory) {
			s.log.Warnf("Service: category %s already exists", category.CategoryID)
			return nil, categoryErrors.ErrCategoryNotCreated
		}
		s.log.Errorf("Service: could not create category %s: %v", category.CategoryID, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"category_id": category.CategoryID,
		"owner":       category.OwnerUserID,
	}).Debug("Service: category created")
	return &category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	affected, err := s.repo.Delete(ctx, categoryID)
	if err != nil {
		s.log.Errorf("Service: could not delete category %s: %v", categoryID, err)
		return fmt.Errorf("could not delete category: %w", err)
	}
	if affected == 0 {
		s.log.Warnf("Service: attempted to delete missing category %s", categoryID)
		return categoryErrors.ErrCategoryDoesNotExist
	}

	s.log.Debugf("Service: category %s deleted", categoryID)
	return nil
}

// UpdateCategory replaces name and description of the category stored under categoryID.
// The owner and creation date of the stored record are kept.
func (s *CategoryService) UpdateCategory(ctx context.Context, category domain.Category, categoryID string) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNoCategory) {
			s.log.Warnf("Service: category %s not found for update", categoryID)
			return nil, categoryErrors.NewCategoryNotFoundError(categoryID)
		}
		s.log.Errorf("Service: could not load category %s for update: %v", categoryID, err)
		return nil, fmt.Errorf("could not load category: %w", err)
	}

	existing.CategoryName = category.CategoryName
	existing.CategoryDescription = category.CategoryDescription

	affected, err := s.repo.Update(ctx, existing)
	if err != nil {
		s.log.Errorf("Service: could not update category %s: %v", categoryID, err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}
	// deleted between the read and the write
	if affected == 0 {
		return nil, categoryErrors.NewCategoryNotFoundError(categoryID)
	}

	s.log.Debugf("Service: category %s updated", categoryID)
	return existing, nil
}

func (s *CategoryService) GetAllCategoryByUserID(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.repo.FindByOwner(ctx, userID)
	if err != nil {
		s.log.Errorf("Service: could not load categories of user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", categoryErrors.ErrCategoryLoadFailed, err)
	}

	if categories == nil {
		return []domain.Category{}, nil
	}

	s.log.Debugf("Service: loaded %d categories of user %s", len(categories), userID)
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNoCategory) {
			return nil, categoryErrors.NewCategoryNotFoundError(categoryID)
		}
		s.log.Errorf("Service: could not load category %s: %v", categoryID, err)
		return nil, fmt.Errorf("could not load category: %w", err)
	}
	return category, nil
}
