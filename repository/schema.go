package repository

import (
	"context"

	"stockfolio/model"

	"github.com/uptrace/bun"
)

// CreateSchema creates the tables this module needs if they do not exist.
// Uniqueness (username, email, symbol) and the composite portfolio primary
// key come from the model tags, so the membership invariant holds at the
// store even under concurrent writers.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*model.User)(nil),
		(*model.UserRole)(nil),
		(*model.Stock)(nil),
		(*model.Comment)(nil),
		(*model.PortfolioEntry)(nil),
	}

	for _, m := range models {
		if _, err := db.NewCreateTable().
			Model(m).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}
