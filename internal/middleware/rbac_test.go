package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"elective/internal/accounts"
)

type stubStore map[string]accounts.Account

func (s stubStore) Get(username string) (accounts.Account, bool) {
	acct, ok := s[username]
	return acct, ok
}

func (s stubStore) Set(username string, acct accounts.Account) error {
	s[username] = acct
	return nil
}

func containsMessage(body, msg string) bool {
	return strings.Contains(body, msg)
}

func roleContext(e *echo.Echo, username string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextUsername, username)
	return c, rec
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	e := echo.New()
	store := stubStore{"alice": {Role: "staff"}}
	c, rec := roleContext(e, "alice")

	called := false
	handler := RequireRole(store, "staff", "admin")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_ForbidsUnlistedRole(t *testing.T) {
	e := echo.New()
	store := stubStore{"bob": {Role: "viewer"}}
	c, rec := roleContext(e, "bob")

	handler := RequireRole(store, "staff", "admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_ForbidsUnknownAccount(t *testing.T) {
	e := echo.New()
	c, rec := roleContext(e, "ghost")

	handler := RequireRole(stubStore{}, "staff", "admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

// The store, not the token claim, is the source of truth: an account whose
// role was changed after login is judged by its current role.
func TestRequireRole_StoreRoleDecides(t *testing.T) {
	e := echo.New()
	store := stubStore{"carol": {Role: "viewer"}}

	c, rec := roleContext(e, "carol")
	// Claim says admin, store says viewer.
	c.Set(ContextRole, "admin")

	handler := RequireRole(store, "staff", "admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
