package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"slimclinic/backend/internal/dto"
	"slimclinic/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockAuthService 只认一个令牌
type mockAuthService struct {
	validToken string
	user       *dto.AuthUser
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return nil, nil
}
func (m *mockAuthService) Logout(_ context.Context, _ string) error {
	return nil
}
func (m *mockAuthService) Authenticate(_ context.Context, token string) (*dto.AuthUser, error) {
	if token != "" && token == m.validToken {
		return m.user, nil
	}
	return nil, service.ErrUnauthenticated
}

func setupAuthRouter(role string) *gin.Engine {
	authSvc := &mockAuthService{
		validToken: "valid-token",
		user:       &dto.AuthUser{ID: 7, Username: "tester", FullName: "测试用户", Role: role},
	}

	r := gin.New()
	protected := r.Group("/api")
	protected.Use(SessionAuth(authSvc))
	{
		protected.GET("/whoami", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"user_id": c.MustGet("user_id"),
				"role":    c.MustGet("role"),
			})
		})

		admin := protected.Group("")
		admin.Use(RoleAuth("admin"))
		admin.GET("/admin-only", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}
	return r
}

func TestSessionAuth_HeaderToken(t *testing.T) {
	r := setupAuthRouter("standard")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/whoami", nil)
	req.Header.Set("X-Session-ID", "valid-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["user_id"].(float64) != 7 {
		t.Errorf("expected user_id=7, got %v", body["user_id"])
	}
	if body["role"] != "standard" {
		t.Errorf("expected role=standard, got %v", body["role"])
	}
}

func TestSessionAuth_QueryToken(t *testing.T) {
	r := setupAuthRouter("standard")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/whoami?session=valid-token", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 via query param, got %d", w.Code)
	}
}

func TestSessionAuth_HeaderTakesPrecedence(t *testing.T) {
	r := setupAuthRouter("standard")

	// 头部是有效令牌时，查询参数中的垃圾值不应干扰
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/whoami?session=garbage", nil)
	req.Header.Set("X-Session-ID", "valid-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestSessionAuth_MissingToken(t *testing.T) {
	r := setupAuthRouter("standard")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/whoami", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "Unauthorized" {
		t.Errorf("unexpected error message: %s", w.Body.String())
	}
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	r := setupAuthRouter("standard")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/whoami", nil)
	req.Header.Set("X-Session-ID", "expired-or-bogus")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRoleAuth_AdminAllowed(t *testing.T) {
	r := setupAuthRouter("admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin-only", nil)
	req.Header.Set("X-Session-ID", "valid-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for admin, got %d", w.Code)
	}
}

func TestRoleAuth_StandardForbidden(t *testing.T) {
	r := setupAuthRouter("standard")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin-only", nil)
	req.Header.Set("X-Session-ID", "valid-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "Forbidden - Admin access required" {
		t.Errorf("unexpected error message: %s", w.Body.String())
	}
}

func TestRoleAuth_UnauthenticatedIs401(t *testing.T) {
	r := setupAuthRouter("standard")

	// 管理员路由上未携带令牌：401 而非 403
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin-only", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

