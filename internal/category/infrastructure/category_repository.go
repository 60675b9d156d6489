package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sebuszqo/CategoryService/internal/category/domain"
)

const uniqueViolationCode = "23505"

var categorySchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
        category_id          VARCHAR(64)  PRIMARY KEY,
        category_name        VARCHAR(255) NOT NULL,
        category_description TEXT         NOT NULL DEFAULT '',
        owner_user_id        VARCHAR(64)  NOT NULL DEFAULT '',
        creation_date        TIMESTAMPTZ  NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS idx_categories_owner ON categories (owner_user_id)`,
}

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// EnsureSchema creates the categories table when it does not exist yet.
func (r *CategoryRepository) EnsureSchema(ctx context.Context) error {
	for _, statement := range categorySchema {
		if _, err := r.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("could not create categories schema: %w", err)
		}
	}
	return nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (category_id, category_name, category_description, owner_user_id, creation_date)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, category.CategoryID, category.CategoryName, category.CategoryDescription,
		category.OwnerUserID, category.CreationDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateCategory
		}
		return fmt.Errorf("could not insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT category_id, category_name, category_description, owner_user_id, creation_date
              FROM categories WHERE category_id = $1`

	var category domain.Category
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(&category.CategoryID, &category.CategoryName,
		&category.CategoryDescription, &category.OwnerUserID, &category.CreationDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoCategory
		}
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindByOwner(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `SELECT category_id, category_name, category_description, owner_user_id, creation_date
              FROM categories WHERE owner_user_id = $1 ORDER BY category_name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.CategoryID, &category.CategoryName, &category.CategoryDescription,
			&category.OwnerUserID, &category.CreationDate); err != nil {
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) (int64, error) {
	query := `
        UPDATE categories
        SET category_name = $1, category_description = $2
        WHERE category_id = $3
    `
	result, err := r.db.ExecContext(ctx, query, category.CategoryName, category.CategoryDescription, category.CategoryID)
	if err != nil {
		return 0, fmt.Errorf("could not update category: %w", err)
	}
	return result.RowsAffected()
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("could not delete category: %w", err)
	}
	return result.RowsAffected()
}
