package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/service"
)

// Exercises both gate stages chained the way the router composes them,
// with a real token service.
func TestGate_FullChain(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", 5*time.Hour)
	dir := &stubDirectory{users: map[string]*domain.User{
		"admin@example.com":  {Email: "admin@example.com", Role: domain.RoleAdmin},
		"member@example.com": {Email: "member@example.com", Role: domain.RoleMember},
	}}

	reached := false
	handler := Auth(tokens)(RequireRole(dir, domain.RoleAdmin)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}))

	run := func(authHeader string) (int, bool) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code, reached
	}

	// No header: rejected at stage one, the directory is never consulted.
	if code, ok := run(""); code != http.StatusUnauthorized || ok {
		t.Fatalf("expected 401 without handler execution, got %d (reached=%v)", code, ok)
	}
	if dir.lookups != 0 {
		t.Fatalf("authorization must not run after failed authentication")
	}

	// Garbage token: same outcome.
	if code, ok := run("Bearer garbage"); code != http.StatusUnauthorized || ok {
		t.Fatalf("expected 401 for invalid token, got %d (reached=%v)", code, ok)
	}

	// Valid token, wrong role.
	memberToken, err := tokens.Issue("member@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if code, ok := run("Bearer " + memberToken); code != http.StatusForbidden || ok {
		t.Fatalf("expected 403 for member, got %d (reached=%v)", code, ok)
	}

	// Valid token, admin role.
	adminToken, err := tokens.Issue("admin@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if code, ok := run("Bearer " + adminToken); code != http.StatusOK || !ok {
		t.Fatalf("expected 200 with handler execution, got %d (reached=%v)", code, ok)
	}
}
