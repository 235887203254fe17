package auth_test

import (
	"context"

	"stockfolio/auth"
	"stockfolio/model"

	"github.com/stretchr/testify/mock"
)

// stubIdentity is a plain Identity value for tests that do not need
// expectation tracking
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

// testLogger discards all output
type testLogger struct{}

func (testLogger) Debug(string, ...any) {}
func (testLogger) Info(string, ...any)  {}
func (testLogger) Warn(string, ...any)  {}
func (testLogger) Error(string, ...any) {}

// MockIdentityProvider implements auth.IdentityProvider for testing
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, username, password string) (auth.Identity, error) {
	args := m.Called(ctx, username, password)
	var identity auth.Identity
	if v := args.Get(0); v != nil {
		identity = v.(auth.Identity)
	}
	return identity, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByID(ctx context.Context, id string) (auth.Identity, error) {
	args := m.Called(ctx, id)
	var identity auth.Identity
	if v := args.Get(0); v != nil {
		identity = v.(auth.Identity)
	}
	return identity, args.Error(1)
}

// MockIdentityRegistrar implements auth.IdentityRegistrar for testing
type MockIdentityRegistrar struct {
	mock.Mock
}

func (m *MockIdentityRegistrar) RegisterIdentity(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	args := m.Called(ctx, username, email, passwordHash)
	var user *model.User
	if v := args.Get(0); v != nil {
		user = v.(*model.User)
	}
	return user, args.Error(1)
}

// testConfig implements auth.Config with a valid signing key
type testConfig struct {
	signingKey string
}

func (c testConfig) GetSigningKey() string   { return c.signingKey }
func (c testConfig) GetTokenExpiration() int { return 1 }
func (c testConfig) GetIssuer() string       { return "stockfolio-test" }
func (c testConfig) GetAudience() []string   { return []string{"stockfolio-test"} }
