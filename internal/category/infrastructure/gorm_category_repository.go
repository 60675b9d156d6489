package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sebuszqo/CategoryService/internal/category/domain"
	"gorm.io/gorm"
)

// categoryRecord is the gorm row of a category.
type categoryRecord struct {
	CategoryID          string `gorm:"primaryKey;size:64"`
	CategoryName        string `gorm:"size:255;not null"`
	CategoryDescription string
	OwnerUserID         string `gorm:"size:64;index"`
	CreationDate        time.Time
}

func (categoryRecord) TableName() string {
	return "categories"
}

func toRecord(category *domain.Category) categoryRecord {
	return categoryRecord{
		CategoryID:          category.CategoryID,
		CategoryName:        category.CategoryName,
		CategoryDescription: category.CategoryDescription,
		OwnerUserID:         category.OwnerUserID,
		CreationDate:        category.CreationDate,
	}
}

func (r categoryRecord) toDomain() domain.Category {
	return domain.Category{
		CategoryID:          r.CategoryID,
		CategoryName:        r.CategoryName,
		CategoryDescription: r.CategoryDescription,
		OwnerUserID:         r.OwnerUserID,
		CreationDate:        r.CreationDate,
	}
}

// GormCategoryRepository stores categories through gorm. The connection should be opened with
// TranslateError enabled so duplicate keys surface as gorm.ErrDuplicatedKey.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Migrate() error {
	if err := r.db.AutoMigrate(&categoryRecord{}); err != nil {
		return fmt.Errorf("migrate categories: %w", err)
	}
	return nil
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	record := toRecord(category)
	err := r.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateCategory
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	var record categoryRecord
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).First(&record).Error
	switch {
	case err == nil:
		category := record.toDomain()
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrNoCategory
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}
}

func (r *GormCategoryRepository) FindByOwner(ctx context.Context, userID string) ([]domain.Category, error) {
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Where("owner_user_id = ?", userID).Order("category_name ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, len(records))
	for i, record := range records {
		categories[i] = record.toDomain()
	}
	return categories, nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, category *domain.Category) (int64, error) {
	result := r.db.WithContext(ctx).Model(&categoryRecord{}).
		Where("category_id = ?", category.CategoryID).
		Updates(map[string]interface{}{
			"category_name":        category.CategoryName,
			"category_description": category.CategoryDescription,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("update category: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, categoryID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&categoryRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete category: %w", result.Error)
	}
	return result.RowsAffected, nil
}
