package interfaces

import "net/http"

const (
	basePath   = "/api/v1/category"
	legacyBase = basePath + "/api/v1"
)

// RegisterRoutes mounts the category endpoints on mux, each wrapped with wrap.
// With legacy set, the older duplicated-prefix paths are mounted as well.
func (h *CategoryHandler) RegisterRoutes(mux *http.ServeMux, wrap func(http.Handler) http.Handler, legacy bool) {
	if wrap == nil {
		wrap = func(next http.Handler) http.Handler { return next }
	}
	handle := func(pattern string, handlerFunc http.HandlerFunc) {
		mux.Handle(pattern, wrap(handlerFunc))
	}

	handle("POST "+basePath, h.CreateCategory)
	handle("DELETE "+basePath+"/{id}", h.DeleteCategory)
	handle("PUT "+basePath+"/{id}", h.UpdateCategory)
	handle("GET "+basePath+"/user/{userId}", h.GetAllCategoryByUserID)
	handle("GET "+basePath+"/{categoryId}", h.GetCategoryByID)

	if !legacy {
		return
	}
	handle("POST "+legacyBase+"/category", h.CreateCategory)
	handle("DELETE "+legacyBase+"/category/{id}", h.DeleteCategory)
	handle("PUT "+legacyBase+"/category/{id}", h.UpdateCategory)
	handle("GET "+legacyBase+"/user/{userId}", h.GetAllCategoryByUserID)
	handle("GET "+legacyBase+"/category/{categoryId}", h.GetCategoryByID)
}
