package httpapi

import (
	"context"
	"strings"

	"stockfolio/auth"

	"github.com/gofiber/fiber/v2"
)

const (
	// AuthScheme is the expected Authorization scheme
	AuthScheme = "Bearer"
	// ClaimsKey is the fiber.Ctx locals key for validated claims
	ClaimsKey = "auth_claims"
	// IdentityKey is the fiber.Ctx locals key for the resolved identity
	IdentityKey = "auth_identity"
)

// TokenValidator validates raw bearer tokens
type TokenValidator interface {
	Validate(tokenString string) (auth.AuthClaims, error)
}

// IdentityResolver re-resolves the caller from the stable id claim
type IdentityResolver interface {
	FindIdentityByID(ctx context.Context, id string) (auth.Identity, error)
}

// RequireAuth extracts the bearer token, validates it, resolves the caller
// and attaches both claims and identity to the request. Every failure
// (missing header, bad signature, wrong issuer or audience, expiry, unknown
// subject) gets the same generic 401 response.
func RequireAuth(validator TokenValidator, resolver IdentityResolver, logger auth.Logger) fiber.Handler {
	if logger == nil {
		logger = NopLogger{}
	}

	return func(c *fiber.Ctx) error {
		raw, ok := extractBearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c)
		}

		claims, err := validator.Validate(raw)
		if err != nil {
			logger.Debug("token validation failed", "error", err)
			return unauthorized(c)
		}

		identity, err := resolver.FindIdentityByID(c.UserContext(), claims.UserID())
		if err != nil {
			logger.Debug("identity resolution failed", "subject", claims.UserID(), "error", err)
			return unauthorized(c)
		}

		c.Locals(ClaimsKey, claims)
		c.Locals(IdentityKey, identity)

		ctx := auth.WithClaimsContext(c.UserContext(), claims)
		c.SetUserContext(auth.WithIdentityContext(ctx, identity))

		return c.Next()
	}
}

// RequireRole rejects authenticated callers that do not carry the role.
// Must run after RequireAuth.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromCtx(c)
		if !ok {
			return unauthorized(c)
		}

		if !auth.HasRole(identity, role) {
			return forbidden(c)
		}

		return c.Next()
	}
}

// ClaimsFromCtx returns the validated claims attached by RequireAuth
func ClaimsFromCtx(c *fiber.Ctx) (auth.AuthClaims, bool) {
	claims, ok := c.Locals(ClaimsKey).(auth.AuthClaims)
	return claims, ok
}

// IdentityFromCtx returns the resolved identity attached by RequireAuth
func IdentityFromCtx(c *fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals(IdentityKey).(auth.Identity)
	return identity, ok
}

func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], AuthScheme) {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "unauthorized",
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message": "forbidden",
	})
}

// NopLogger discards all log output
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
