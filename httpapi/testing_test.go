package httpapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockfolio/auth"
	"stockfolio/httpapi"
	"stockfolio/model"
	"stockfolio/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubIdentity struct {
	id       string
	username string
	email    string
	roles    []string
}

func (s stubIdentity) ID() string       { return s.id }
func (s stubIdentity) Username() string { return s.username }
func (s stubIdentity) Email() string    { return s.email }
func (s stubIdentity) Roles() []string  { return s.roles }

type stubValidator struct {
	claims auth.AuthClaims
	err    error
}

func (s stubValidator) Validate(string) (auth.AuthClaims, error) {
	return s.claims, s.err
}

type stubResolver struct {
	identity auth.Identity
	err      error
}

func (s stubResolver) FindIdentityByID(context.Context, string) (auth.Identity, error) {
	return s.identity, s.err
}

// asIdentity injects an authenticated caller, standing in for RequireAuth
func asIdentity(identity auth.Identity) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(httpapi.IdentityKey, identity)
		c.SetUserContext(auth.WithIdentityContext(c.UserContext(), identity))
		return c.Next()
	}
}

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// fakeStockFinder resolves a fixed set of stocks
type fakeStockFinder struct {
	byID     map[int64]*model.Stock
	bySymbol map[string]*model.Stock
	err      error
}

func newFakeStockFinder(stocks ...*model.Stock) *fakeStockFinder {
	f := &fakeStockFinder{
		byID:     map[int64]*model.Stock{},
		bySymbol: map[string]*model.Stock{},
	}
	for _, s := range stocks {
		f.byID[s.ID] = s
		f.bySymbol[s.Symbol] = s
	}
	return f
}

func (f *fakeStockFinder) GetByID(_ context.Context, id int64) (*model.Stock, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, repository.ErrStockNotFound
}

func (f *fakeStockFinder) GetBySymbol(_ context.Context, symbol string) (*model.Stock, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.bySymbol[symbol]; ok {
		return s, nil
	}
	return nil, repository.ErrStockNotFound
}

func testCaller() (stubIdentity, uuid.UUID) {
	id := uuid.New()
	return stubIdentity{
		id:       id.String(),
		username: "testuser",
		email:    "test@example.com",
		roles:    []string{"user"},
	}, id
}
