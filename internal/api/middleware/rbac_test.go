package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/geopoint/internal/core/domain"
)

func runRBAC(t *testing.T, principal any, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(PrincipalKey, principal)
	}

	if err := RBAC(domain.RoleAdmin, domain.RoleDevice)(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRBAC_Allows(t *testing.T) {
	for _, role := range []string{domain.RoleAdmin, domain.RoleDevice} {
		called := false
		rec := runRBAC(t, domain.Principal{Role: role}, func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})
		if !called {
			t.Fatalf("%s: next handler not called", role)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", role, rec.Code)
		}
	}
}

func TestRBAC_Forbids(t *testing.T) {
	cases := map[string]any{
		"unknown role": domain.Principal{Role: "guest"},
		"no principal": nil,
		"wrong type":   "admin",
	}
	for name, principal := range cases {
		t.Run(name, func(t *testing.T) {
			rec := runRBAC(t, principal, func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})
			if rec.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", rec.Code)
			}
		})
	}
}
