package repository_test

import (
	"context"
	"testing"

	"stockfolio/model"
	"stockfolio/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStocksCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create and fetch by id and symbol", func(t *testing.T) {
		repo := repository.NewStocksRepository(setupDB(t))

		created := seedStock(t, repo, "AAPL", "Apple Inc.")

		byID, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "AAPL", byID.Symbol)

		bySymbol, err := repo.GetBySymbol(ctx, "AAPL")
		require.NoError(t, err)
		assert.Equal(t, created.ID, bySymbol.ID)
		assert.Equal(t, "Apple Inc.", bySymbol.CompanyName)
	})

	t.Run("unknown stock", func(t *testing.T) {
		repo := repository.NewStocksRepository(setupDB(t))

		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, repository.ErrStockNotFound)

		_, err = repo.GetBySymbol(ctx, "NOPE")
		assert.ErrorIs(t, err, repository.ErrStockNotFound)
	})

	t.Run("list is ordered by symbol", func(t *testing.T) {
		repo := repository.NewStocksRepository(setupDB(t))

		seedStock(t, repo, "MSFT", "Microsoft Corp.")
		seedStock(t, repo, "AAPL", "Apple Inc.")

		records, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "AAPL", records[0].Symbol)
		assert.Equal(t, "MSFT", records[1].Symbol)
	})

	t.Run("update", func(t *testing.T) {
		repo := repository.NewStocksRepository(setupDB(t))

		created := seedStock(t, repo, "AAPL", "Apple Inc.")
		created.Purchase = 222.75

		updated, err := repo.Update(ctx, created)
		require.NoError(t, err)
		assert.Equal(t, 222.75, updated.Purchase)

		stored, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 222.75, stored.Purchase)
	})

	t.Run("update of a missing stock", func(t *testing.T) {
		repo := repository.NewStocksRepository(setupDB(t))

		_, err := repo.Update(ctx, &model.Stock{ID: 999, Symbol: "GONE", CompanyName: "Gone Corp."})
		assert.ErrorIs(t, err, repository.ErrStockNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		repo := repository.NewStocksRepository(setupDB(t))

		created := seedStock(t, repo, "AAPL", "Apple Inc.")

		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err := repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, repository.ErrStockNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, created.ID), repository.ErrStockNotFound)
	})
}
