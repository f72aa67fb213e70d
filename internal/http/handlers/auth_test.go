package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	intconfig "github.com/koard/DukeFarm-Admin-sub000/internal/config"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/http/middleware"
)

func adminRowWithHash(hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "name", "email", "role", "status", "created_at", "updated_at", "password_hash",
	}).AddRow(
		"admin-1", "Admin", "admin@dukefarm.io", models.RoleSuperadmin,
		models.AdminStatusActive, "2026-01-01T00:00:00Z", "", hash,
	)
}

func loginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.POST("/api/auth/admin/login", AdminLogin)
	return r
}

func TestAdminLoginIssuesToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery("SELECT (.+) FROM admin_users WHERE email").
		WithArgs("admin@dukefarm.io").
		WillReturnRows(adminRowWithHash(string(hash)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/login",
		strings.NewReader(`{"email":"admin@dukefarm.io","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	loginRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status %d, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Data models.LoginResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.Token == "" {
		t.Fatalf("no token in response: %s", w.Body.String())
	}
	if body.Data.User.UserID != "admin-1" {
		t.Fatalf("unexpected user payload: %+v", body.Data.User)
	}

	// The issued token must pass the auth middleware and carry the role.
	authed := gin.New()
	var gotRole string
	authed.GET("/whoami", middleware.RequireAuth(JWTSecret()), func(c *gin.Context) {
		gotRole = middleware.AuthRole(c)
		c.Status(http.StatusOK)
	})

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req2.Header.Set("Authorization", "Bearer "+body.Data.Token)
	authed.ServeHTTP(w2, req2)

	if w2.Code != http.StatusOK {
		t.Fatalf("whoami status %d", w2.Code)
	}
	if gotRole != models.RoleSuperadmin {
		t.Fatalf("role claim mismatch: %q", gotRole)
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	mock.ExpectQuery("SELECT (.+) FROM admin_users WHERE email").
		WithArgs("admin@dukefarm.io").
		WillReturnRows(adminRowWithHash(string(hash)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/login",
		strings.NewReader(`{"email":"admin@dukefarm.io","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	loginRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "request_id") {
		t.Fatalf("error payload missing request_id: %s", w.Body.String())
	}
}

func TestRequireRolesBlocksNonSuperadmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Forge a token with the plain admin role, then hit a superadmin route.
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	rows := sqlmock.NewRows([]string{
		"user_id", "name", "email", "role", "status", "created_at", "updated_at", "password_hash",
	}).AddRow("admin-2", "Staff", "staff@dukefarm.io", models.RoleAdmin,
		models.AdminStatusActive, "2026-01-01T00:00:00Z", "", string(hash))
	mock.ExpectQuery("SELECT (.+) FROM admin_users WHERE email").
		WithArgs("staff@dukefarm.io").
		WillReturnRows(rows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/login",
		strings.NewReader(`{"email":"staff@dukefarm.io","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	loginRouter().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login status %d", w.Code)
	}

	var body struct {
		Data models.LoginResult `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)

	gated := gin.New()
	gated.GET("/admins",
		middleware.RequireAuth(JWTSecret()),
		middleware.RequireRoles(models.RoleSuperadmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/admins", nil)
	req2.Header.Set("Authorization", "Bearer "+body.Data.Token)
	gated.ServeHTTP(w2, req2)

	if w2.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w2.Code)
	}
}
