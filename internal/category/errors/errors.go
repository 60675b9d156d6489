package errors

import (
	"errors"
	"fmt"
)

var (
	ErrCategoryNotCreated   = errors.New("category not created")
	ErrCategoryDoesNotExist = errors.New("category does not exist")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryLoadFailed   = errors.New("categories could not be loaded")
)

type CategoryNotFoundError struct {
	ID string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("Category with id %s not found", e.ID)
}

func (e *CategoryNotFoundError) Unwrap() error {
	return ErrCategoryNotFound
}

func NewCategoryNotFoundError(id string) error {
	return &CategoryNotFoundError{ID: id}
}

func IsNotFound(err error) bool {
	var notFoundError *CategoryNotFoundError
	ok := errors.As(err, &notFoundError)
	return ok || errors.Is(err, ErrCategoryNotFound)
}
