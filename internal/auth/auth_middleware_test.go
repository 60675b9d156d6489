package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(userID))
	})
}

func TestJWTAccessTokenMiddleware(t *testing.T) {
	manager, err := NewJWTManager("test-secret")
	require.NoError(t, err)
	validToken, err := manager.GenerateAccessJWT("u1", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
		wantError  string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantError: "Authorization header is required"},
		{name: "no bearer prefix", header: validToken, wantStatus: http.StatusUnauthorized, wantError: "Invalid token format"},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized, wantError: "Invalid or expired token"},
		{name: "valid token", header: "Bearer " + validToken, wantStatus: http.StatusOK, wantBody: "u1"},
	}

	handler := JWTAccessTokenMiddleware(manager)(protectedEcho())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/category/cat1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatus, res.StatusCode)

			if tt.wantError != "" {
				var response ErrorResponse
				assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
				assert.Equal(t, "error", response.Status)
				assert.Equal(t, tt.wantError, response.Message)
				return
			}
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestUserIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithUserID(req.Context(), ""))
	assert.False(t, ok)
}
