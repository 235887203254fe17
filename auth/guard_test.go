package auth_test

import (
	"testing"

	"stockfolio/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeOwnership(t *testing.T) {
	owner := uuid.New()

	t.Run("owner may act", func(t *testing.T) {
		assert.NoError(t, auth.AuthorizeOwnership(owner, owner))
	})

	t.Run("different caller is rejected", func(t *testing.T) {
		err := auth.AuthorizeOwnership(uuid.New(), owner)
		assert.ErrorIs(t, err, auth.ErrNotResourceOwner)
	})

	t.Run("nil caller is rejected even against a nil owner", func(t *testing.T) {
		err := auth.AuthorizeOwnership(uuid.Nil, uuid.Nil)
		assert.ErrorIs(t, err, auth.ErrNotResourceOwner)
	})
}

func TestHasRole(t *testing.T) {
	identity := stubIdentity{
		id:    uuid.NewString(),
		roles: []string{"user", "admin"},
	}

	t.Run("carried role", func(t *testing.T) {
		assert.True(t, auth.HasRole(identity, "admin"))
		assert.True(t, auth.HasRole(identity, "user"))
	})

	t.Run("missing role", func(t *testing.T) {
		assert.False(t, auth.HasRole(identity, "auditor"))
	})

	t.Run("nil identity", func(t *testing.T) {
		assert.False(t, auth.HasRole(nil, "user"))
	})
}
