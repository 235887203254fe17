package repository_test

import (
	"context"
	"testing"

	"stockfolio/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	repo := repository.NewManager(setupDB(t))

	t.Run("validates its repositories", func(t *testing.T) {
		require.NoError(t, repo.Validate())
		repo.MustValidate()
	})

	t.Run("repositories share one database", func(t *testing.T) {
		stock := seedStock(t, repo.Stocks(), "AAPL", "Apple Inc.")

		found, err := repo.Stocks().GetBySymbol(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, stock.ID, found.ID)

		assert.NotNil(t, repo.Users())
		assert.NotNil(t, repo.Comments())
		assert.NotNil(t, repo.Portfolios())
	})
}
