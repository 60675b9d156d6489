package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrDuplicateCategory = errors.New("category with this id already exists")
	ErrNoCategory        = errors.New("no category with this id")
)

type Category struct {
	CategoryID          string    `json:"categoryId"`
	CategoryName        string    `json:"categoryName"`
	CategoryDescription string    `json:"categoryDescription"`
	OwnerUserID         string    `json:"ownerUserId"`
	CreationDate        time.Time `json:"categoryCreationDate"`
}

// CategoryRepository is the persistence port for categories.
// Create returns ErrDuplicateCategory when the id is taken, FindByID returns ErrNoCategory when it is missing.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, categoryID string) (*Category, error)
	FindByOwner(ctx context.Context, userID string) ([]Category, error)
	Update(ctx context.Context, category *Category) (int64, error)
	Delete(ctx context.Context, categoryID string) (int64, error)
}
