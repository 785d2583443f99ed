package middleware

import (
	"FlowHub/config"
	"FlowHub/pkg/context"
	"FlowHub/pkg/jwt"
	base "context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type adminSet map[string]bool

func (a adminSet) IsAdmin(_ base.Context, userID string) (bool, error) {
	return a[userID], nil
}

func newEngine(t *testing.T) (*gin.Engine, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	v, err := jwt.NewVerifier(&config.Config{Jwt: &config.Jwt{Secret: "mw-secret"}})
	if err != nil {
		t.Fatal(err)
	}
	admin, _ := jwt.GenerateToken([]byte("mw-secret"), "admin_1", "", time.Hour)
	member, _ := jwt.GenerateToken([]byte("mw-secret"), "member_1", "", time.Hour)

	echo := func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(context.CtxUserID))
	}
	r := gin.New()
	r.GET("/private", Auth(v), echo)
	r.GET("/optional", OptionalAuth(v), echo)
	r.GET("/admin", Auth(v), RequireAdmin(adminSet{"admin_1": true}), echo)
	return r, admin, member
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r, _, member := newEngine(t)
	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + member, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid", "Bearer " + member, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := get(r, "/private", tc.header); w.Code != tc.code {
				t.Fatalf("code = %d, want %d", w.Code, tc.code)
			}
		})
	}
	if w := get(r, "/private", "Bearer "+member); w.Body.String() != "member_1" {
		t.Fatalf("user id = %q", w.Body.String())
	}
}

func TestOptionalAuth(t *testing.T) {
	r, _, member := newEngine(t)
	if w := get(r, "/optional", ""); w.Code != http.StatusOK || w.Body.String() != "" {
		t.Fatalf("anonymous = %d %q", w.Code, w.Body.String())
	}
	if w := get(r, "/optional", "Bearer broken"); w.Code != http.StatusOK || w.Body.String() != "" {
		t.Fatalf("invalid token should continue anonymously, got %d %q", w.Code, w.Body.String())
	}
	if w := get(r, "/optional", "Bearer "+member); w.Body.String() != "member_1" {
		t.Fatalf("user id = %q", w.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	r, admin, member := newEngine(t)
	if w := get(r, "/admin", "Bearer "+member); w.Code != http.StatusForbidden {
		t.Fatalf("member = %d", w.Code)
	}
	if w := get(r, "/admin", "Bearer "+admin); w.Code != http.StatusOK {
		t.Fatalf("admin = %d", w.Code)
	}
}
