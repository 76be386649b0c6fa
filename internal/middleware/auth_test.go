package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/andamanescapes/travel-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
}

func testToken(t *testing.T, role string) string {
	t.Helper()
	user := models.User{Email: "traveller@example.com", Role: role}
	user.ID = 42
	token, err := utils.GenerateToken(&user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func protectedRouter(handlerCalled *bool) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		*handlerCalled = true
		c.JSON(200, gin.H{"userId": c.GetUint("userId"), "role": c.GetString("userRole")})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	called := false
	r := protectedRouter(&called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if called {
		t.Error("handler must not run without a token")
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	called := false
	r := protectedRouter(&called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if called {
		t.Error("handler must not run with an invalid token")
	}
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	called := false
	r := protectedRouter(&called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "user"))
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !called {
		t.Error("handler should have run")
	}
}

func TestAuthMiddlewareAcceptsQueryToken(t *testing.T) {
	// WebSocket clients pass the token as a query parameter
	called := false
	r := protectedRouter(&called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+testToken(t, "user"), nil)
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	called := false
	r := gin.New()
	r.GET("/admin", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		called = true
		c.JSON(200, gin.H{})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "user"))
	r.ServeHTTP(w, req)

	if w.Code != 403 {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if called {
		t.Error("handler must not run for non-admin users")
	}
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, "admin"))
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
