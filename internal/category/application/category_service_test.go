package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sebuszqo/CategoryService/internal/auth"
	"github.com/sebuszqo/CategoryService/internal/category/domain"
	categoryErrors "github.com/sebuszqo/CategoryService/internal/category/errors"
	"github.com/sebuszqo/CategoryService/internal/category/infrastructure"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestService(repo domain.CategoryRepository) *CategoryService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	service := NewCategoryService(repo, logger)
	service.now = func() time.Time { return fixedNow }
	return service
}

func TestCreateCategory_SetsCreationDate(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository()
	service := newTestService(repo)

	created, err := service.CreateCategory(context.Background(), domain.Category{CategoryID: "cat1", CategoryName: "Work", OwnerUserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, fixedNow, created.CreationDate)
	assert.Equal(t, *created, repo.Categories["cat1"])
}

func TestCreateCategory_GeneratesID(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository()
	service := newTestService(repo)

	created, err := service.CreateCategory(context.Background(), domain.Category{CategoryName: "Work"})
	require.NoError(t, err)

	_, err = uuid.Parse(created.CategoryID)
	assert.NoError(t, err)
	assert.Contains(t, repo.Categories, created.CategoryID)
}

func TestCreateCategory_OwnerFromContext(t *testing.T) {
	service := newTestService(infrastructure.NewMockCategoryRepository())
	ctx := auth.WithUserID(context.Background(), "u7")

	created, err := service.CreateCategory(ctx, domain.Category{CategoryID: "cat1", CategoryName: "Work"})
	require.NoError(t, err)
	assert.Equal(t, "u7", created.OwnerUserID)

	created, err = service.CreateCategory(ctx, domain.Category{CategoryID: "cat2", CategoryName: "Home", OwnerUserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.OwnerUserID)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository(domain.Category{CategoryID: "cat1", CategoryName: "Work"})
	service := newTestService(repo)

	_, err := service.CreateCategory(context.Background(), domain.Category{CategoryID: "cat1", CategoryName: "Other"})
	assert.ErrorIs(t, err, categoryErrors.ErrCategoryNotCreated)
	assert.Equal(t, "Work", repo.Categories["cat1"].CategoryName)
}

func TestCreateCategory_RepositoryFailure(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository()
	repo.Err = errors.New("connection refused")
	service := newTestService(repo)

	_, err := service.CreateCategory(context.Background(), domain.Category{CategoryID: "cat1"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, categoryErrors.ErrCategoryNotCreated)
}

func TestDeleteCategory(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository(domain.Category{CategoryID: "cat1"})
	service := newTestService(repo)

	assert.NoError(t, service.DeleteCategory(context.Background(), "cat1"))
	assert.NotContains(t, repo.Categories, "cat1")

	err := service.DeleteCategory(context.Background(), "cat1")
	assert.ErrorIs(t, err, categoryErrors.ErrCategoryDoesNotExist)
}

func TestUpdateCategory_KeepsOwnerAndCreationDate(t *testing.T) {
	created := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo := infrastructure.NewMockCategoryRepository(domain.Category{
		CategoryID: "cat1", CategoryName: "Work", OwnerUserID: "u1", CreationDate: created,
	})
	service := newTestService(repo)

	updated, err := service.UpdateCategory(context.Background(), domain.Category{
		CategoryID:          "ignored",
		CategoryName:        "Office",
		CategoryDescription: "desk things",
		OwnerUserID:         "intruder",
	}, "cat1")
	require.NoError(t, err)

	want := domain.Category{CategoryID: "cat1", CategoryName: "Office", CategoryDescription: "desk things", OwnerUserID: "u1", CreationDate: created}
	assert.Equal(t, want, *updated)
	assert.Equal(t, want, repo.Categories["cat1"])
	assert.NotContains(t, repo.Categories, "ignored")
}

func TestUpdateCategory_NotFound(t *testing.T) {
	service := newTestService(infrastructure.NewMockCategoryRepository())

	_, err := service.UpdateCategory(context.Background(), domain.Category{CategoryName: "Work"}, "missing")
	assert.True(t, categoryErrors.IsNotFound(err))
	assert.ErrorIs(t, err, categoryErrors.ErrCategoryNotFound)
}

func TestGetAllCategoryByUserID(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository(
		domain.Category{CategoryID: "cat1", CategoryName: "Work", OwnerUserID: "u1"},
		domain.Category{CategoryID: "cat2", CategoryName: "Home", OwnerUserID: "u1"},
		domain.Category{CategoryID: "cat3", CategoryName: "Gym", OwnerUserID: "u2"},
	)
	service := newTestService(repo)

	categories, err := service.GetAllCategoryByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Home", categories[0].CategoryName)
	assert.Equal(t, "Work", categories[1].CategoryName)
}

func TestGetAllCategoryByUserID_EmptyIsNotNil(t *testing.T) {
	service := newTestService(infrastructure.NewMockCategoryRepository())

	categories, err := service.GetAllCategoryByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestGetAllCategoryByUserID_LoadFailure(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository()
	repo.Err = errors.New("timeout")
	service := newTestService(repo)

	categories, err := service.GetAllCategoryByUserID(context.Background(), "u1")
	assert.Nil(t, categories)
	assert.ErrorIs(t, err, categoryErrors.ErrCategoryLoadFailed)
}

func TestGetCategoryByID(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository(domain.Category{CategoryID: "cat1", CategoryName: "Work"})
	service := newTestService(repo)

	category, err := service.GetCategoryByID(context.Background(), "cat1")
	require.NoError(t, err)
	assert.Equal(t, "Work", category.CategoryName)

	_, err = service.GetCategoryByID(context.Background(), "cat9")
	var notFound *categoryErrors.CategoryNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "cat9", notFound.ID)
	assert.Equal(t, "Category with id cat9 not found", err.Error())
}

func TestGetCategoryByID_RepositoryFailure(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository()
	repo.Err = errors.New("timeout")
	service := newTestService(repo)

	_, err := service.GetCategoryByID(context.Background(), "cat1")
	assert.Error(t, err)
	assert.False(t, categoryErrors.IsNotFound(err))
}
