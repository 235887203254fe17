package repository

import (
	"context"

	"stockfolio/model"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Portfolios is the portfolio membership store. Add and Remove are the
// atomic check-and-write operations that keep the (user, stock) invariant;
// two concurrent adds cannot both pass, the composite primary key decides.
type Portfolios interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Stock, error)
	Exists(ctx context.Context, userID uuid.UUID, stockID int64) (bool, error)
	Add(ctx context.Context, userID uuid.UUID, stockID int64) error
	Remove(ctx context.Context, userID uuid.UUID, stockID int64) error
}

type portfolios struct {
	db *bun.DB
}

var _ Portfolios = (*portfolios)(nil)

func NewPortfoliosRepository(db *bun.DB) Portfolios {
	return &portfolios{db: db}
}

func (p *portfolios) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Stock, error) {
	var records []*model.Stock
	err := p.db.NewSelect().
		Model(&records).
		Join("JOIN portfolios AS pf ON pf.stock_id = ?TableAlias.id").
		Where("pf.app_user_id = ?", userID).
		Order("symbol ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (p *portfolios) Exists(ctx context.Context, userID uuid.UUID, stockID int64) (bool, error) {
	return p.db.NewSelect().
		Model((*model.PortfolioEntry)(nil)).
		Where("?TableAlias.app_user_id = ? AND ?TableAlias.stock_id = ?", userID, stockID).
		Exists(ctx)
}

func (p *portfolios) Add(ctx context.Context, userID uuid.UUID, stockID int64) error {
	entry := &model.PortfolioEntry{
		AppUserID: userID,
		StockID:   stockID,
	}

	res, err := p.db.NewInsert().
		Model(entry).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrStockAlreadyInPortfolio
		}
		return err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrStockAlreadyInPortfolio
	}

	return nil
}

func (p *portfolios) Remove(ctx context.Context, userID uuid.UUID, stockID int64) error {
	res, err := p.db.NewDelete().
		Model((*model.PortfolioEntry)(nil)).
		Where("?TableAlias.app_user_id = ? AND ?TableAlias.stock_id = ?", userID, stockID).
		Exec(ctx)
	if err != nil {
		return err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrStockNotInPortfolio
	}

	return nil
}
