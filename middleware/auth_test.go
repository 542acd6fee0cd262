package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TahoorBR/LegalAdvisor/config"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:        "test-secret",
		TokenExpireHours: 1,
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := testAuthConfig()

	token, expiresAt, err := GenerateToken("alice", "tenant1", cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token == "" {
		t.Error("Expected non-empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Error("Expected expiry in the future")
	}
}

func authTestRouter(cfg *config.AuthConfig) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": GetUsername(c),
			"tenant":   GetTenant(c),
		})
	})
	return router
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := testAuthConfig()
	router := authTestRouter(cfg)

	token, _, err := GenerateToken("alice", "tenant1", cfg)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	cfg := testAuthConfig()
	router := authTestRouter(cfg)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "NotBearer token"},
		{"invalid token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected status 401, got %d", w.Code)
			}
		})
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("alice", "tenant1", &config.AuthConfig{
		JWTSecret:        "other-secret",
		TokenExpireHours: 1,
	})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	router := authTestRouter(testAuthConfig())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for wrong secret, got %d", w.Code)
	}
}
