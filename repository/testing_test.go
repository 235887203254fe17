package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"stockfolio/model"
	"stockfolio/repository"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// setupDB opens an in-memory sqlite database with the schema applied.
// A single connection keeps the in-memory database alive for the whole test.
func setupDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repository.CreateSchema(context.Background(), db))

	return db
}

func seedStock(t *testing.T, repo repository.Stocks, symbol, companyName string) *model.Stock {
	t.Helper()

	record, err := repo.Create(context.Background(), &model.Stock{
		Symbol:      symbol,
		CompanyName: companyName,
		Purchase:    100.50,
		LastDiv:     1.25,
		Industry:    "Technology",
		MarketCap:   1_000_000,
	})
	require.NoError(t, err)
	require.NotZero(t, record.ID)

	return record
}
