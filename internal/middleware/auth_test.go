package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"elective/internal/auth"
)

func newContext(e *echo.Echo, header string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidTokenWithBearerPrefix(t *testing.T) {
	e := echo.New()
	tokens := auth.NewJWTService("secret")
	signed, err := tokens.Issue("alice", "staff")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := newContext(e, "Bearer "+signed)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(ContextUsername) != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get(ContextRole) != "staff" {
			t.Fatalf("role not set")
		}
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

func TestAuth_ValidTokenWithoutPrefix(t *testing.T) {
	e := echo.New()
	tokens := auth.NewJWTService("secret")
	signed, err := tokens.Issue("alice", "staff")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// No "Bearer " prefix: the whole header value is the token.
	c, rec := newContext(e, signed)

	handler := Auth(tokens)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e, "")

	handler := Auth(auth.NewJWTService("secret"))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); !containsMessage(body, "Token is missing") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	secret := "secret"

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		Username: "alice",
		Role:     "staff",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c, rec := newContext(e, "Bearer "+signed)

	handler := Auth(auth.NewJWTService(secret))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); !containsMessage(body, "Token has expired") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e, "Bearer not-a-token")

	handler := Auth(auth.NewJWTService("secret"))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); !containsMessage(body, "Invalid token") {
		t.Fatalf("unexpected body: %s", body)
	}
}
