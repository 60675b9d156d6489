package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sebuszqo/CategoryService/internal/category/domain"
	categoryErrors "github.com/sebuszqo/CategoryService/internal/category/errors"
)

const (
	msgCreated           = "Created"
	msgConflict          = "Conflict"
	msgCategoryDeleted   = "Category deleted"
	msgCategoryNotFound  = "Category Not Found"
	msgLoadingError      = "Error in loading the content"
	msgInvalidBody       = "Invalid request body"
	msgInternalError     = "Internal Server Error"
	updateNotFoundSuffix = ": not found"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
	UpdateCategory(ctx context.Context, category domain.Category, categoryID string) (*domain.Category, error)
	GetAllCategoryByUserID(ctx context.Context, userID string) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
}

// CategoryHandler maps category HTTP requests onto the category service. Plain status
// messages go through respondText, categories through respondJSON.
type CategoryHandler struct {
	service     CategoryServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
	respondText func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondText func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondText == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:     service,
		respondJSON: respondJSON,
		respondText: respondText,
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	_, err := h.service.CreateCategory(r.Context(), category)
	if err != nil {
		if errors.Is(err, categoryErrors.ErrCategoryNotCreated) {
			h.respondText(w, http.StatusConflict, msgConflict)
			return
		}
		h.respondText(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.respondText(w, http.StatusCreated, msgCreated)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, categoryErrors.ErrCategoryDoesNotExist) {
			h.respondText(w, http.StatusNotFound, msgCategoryNotFound)
			return
		}
		h.respondText(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.respondText(w, http.StatusOK, msgCategoryDeleted)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	updated, err := h.service.UpdateCategory(r.Context(), category, r.PathValue("id"))
	if err != nil {
		// not-found on update is reported as a conflict naming the requested category
		if categoryErrors.IsNotFound(err) {
			h.respondText(w, http.StatusConflict, category.CategoryName+updateNotFoundSuffix)
			return
		}
		h.respondText(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.respondJSON(w, http.StatusOK, updated)
}

func (h *CategoryHandler) GetAllCategoryByUserID(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategoryByUserID(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.respondText(w, http.StatusConflict, msgLoadingError)
		return
	}

	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategoryByID(r.Context(), r.PathValue("categoryId"))
	if err != nil {
		if categoryErrors.IsNotFound(err) {
			h.respondText(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondText(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.respondJSON(w, http.StatusOK, category)
}
