package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"event-admin-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authService := service.NewAuthService(&service.AuthServiceConfig{
		AdminUser:     "admin",
		AdminPassword: "s3cret",
		JWTSecret:     "handler-test-secret",
	})
	NewAuthHandler(authService).RegisterRoutes(router)

	return router
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router := setupAuthTestRouter()

		req := createJSONHTTPRequest("POST", "/login", LoginRequest{
			Username: "admin",
			Password: "s3cret",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token"`)
	})

	t.Run("Failed - wrong password", func(t *testing.T) {
		router := setupAuthTestRouter()

		req := createJSONHTTPRequest("POST", "/login", LoginRequest{
			Username: "admin",
			Password: "wrong",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		assert.NotContains(t, w.Body.String(), "token")
	})

	t.Run("Failed - missing fields", func(t *testing.T) {
		router := setupAuthTestRouter()

		req := createJSONHTTPRequest("POST", "/login", map[string]string{"username": "admin"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
