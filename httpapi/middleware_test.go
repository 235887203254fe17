package httpapi_test

import (
	"net/http"
	"testing"

	"stockfolio/auth"
	"stockfolio/httpapi"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(validator httpapi.TokenValidator, resolver httpapi.IdentityResolver) *fiber.App {
	app := fiber.New()
	app.Get("/protected", httpapi.RequireAuth(validator, resolver, httpapi.NopLogger{}), func(c *fiber.Ctx) error {
		identity, ok := httpapi.IdentityFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"id": identity.ID()})
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	caller, _ := testCaller()
	claims := &auth.JWTClaims{UID: caller.id}

	t.Run("valid token reaches the handler", func(t *testing.T) {
		app := newProtectedApp(
			stubValidator{claims: claims},
			stubResolver{identity: caller},
		)

		req := jsonRequest(t, fiber.MethodGet, "/protected", "")
		req.Header.Set(fiber.HeaderAuthorization, "Bearer some-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, caller.id, body["id"])
	})

	t.Run("case insensitive scheme", func(t *testing.T) {
		app := newProtectedApp(
			stubValidator{claims: claims},
			stubResolver{identity: caller},
		)

		req := jsonRequest(t, fiber.MethodGet, "/protected", "")
		req.Header.Set(fiber.HeaderAuthorization, "bearer some-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	unauthorizedCases := []struct {
		name      string
		header    string
		validator httpapi.TokenValidator
		resolver  httpapi.IdentityResolver
	}{
		{
			name:      "missing header",
			header:    "",
			validator: stubValidator{claims: claims},
			resolver:  stubResolver{identity: caller},
		},
		{
			name:      "wrong scheme",
			header:    "Basic dXNlcjpwYXNz",
			validator: stubValidator{claims: claims},
			resolver:  stubResolver{identity: caller},
		},
		{
			name:      "scheme without token",
			header:    "Bearer ",
			validator: stubValidator{claims: claims},
			resolver:  stubResolver{identity: caller},
		},
		{
			name:      "expired token",
			header:    "Bearer some-token",
			validator: stubValidator{err: auth.ErrTokenExpired},
			resolver:  stubResolver{identity: caller},
		},
		{
			name:      "bad signature",
			header:    "Bearer some-token",
			validator: stubValidator{err: auth.ErrTokenSignatureInvalid},
			resolver:  stubResolver{identity: caller},
		},
		{
			name:      "unknown subject",
			header:    "Bearer some-token",
			validator: stubValidator{claims: claims},
			resolver:  stubResolver{err: auth.ErrIdentityNotFound},
		},
	}

	for _, tt := range unauthorizedCases {
		t.Run(tt.name, func(t *testing.T) {
			app := newProtectedApp(tt.validator, tt.resolver)

			req := jsonRequest(t, fiber.MethodGet, "/protected", "")
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			// every failure mode produces the same generic body
			var body map[string]string
			decodeBody(t, resp, &body)
			assert.Equal(t, "unauthorized", body["message"])
		})
	}
}

func TestRequireRole(t *testing.T) {
	newApp := func(identity auth.Identity) *fiber.App {
		app := fiber.New()
		app.Get("/admin",
			asIdentity(identity),
			httpapi.RequireRole("admin"),
			func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
		)
		return app
	}

	t.Run("role carried", func(t *testing.T) {
		admin := stubIdentity{id: "admin-1", roles: []string{"user", "admin"}}

		resp, err := newApp(admin).Test(jsonRequest(t, fiber.MethodGet, "/admin", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("role missing", func(t *testing.T) {
		caller, _ := testCaller()

		resp, err := newApp(caller).Test(jsonRequest(t, fiber.MethodGet, "/admin", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("no identity attached", func(t *testing.T) {
		app := fiber.New()
		app.Get("/admin",
			httpapi.RequireRole("admin"),
			func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
		)

		resp, err := app.Test(jsonRequest(t, fiber.MethodGet, "/admin", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
