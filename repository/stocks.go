package repository

import (
	"context"

	"stockfolio/model"

	"github.com/uptrace/bun"
)

// Stocks is the stock catalog store. Stocks belong to no user; mutation is
// not gated by the ownership core.
type Stocks interface {
	List(ctx context.Context) ([]*model.Stock, error)
	GetByID(ctx context.Context, id int64) (*model.Stock, error)
	GetBySymbol(ctx context.Context, symbol string) (*model.Stock, error)
	Create(ctx context.Context, record *model.Stock) (*model.Stock, error)
	Update(ctx context.Context, record *model.Stock) (*model.Stock, error)
	Delete(ctx context.Context, id int64) error
}

type stocks struct {
	db *bun.DB
}

var _ Stocks = (*stocks)(nil)

func NewStocksRepository(db *bun.DB) Stocks {
	return &stocks{db: db}
}

func (s *stocks) List(ctx context.Context) ([]*model.Stock, error) {
	var records []*model.Stock
	if err := s.db.NewSelect().Model(&records).Order("symbol ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *stocks) GetByID(ctx context.Context, id int64) (*model.Stock, error) {
	return s.getOne(ctx, "?TableAlias.id = ?", id)
}

func (s *stocks) GetBySymbol(ctx context.Context, symbol string) (*model.Stock, error) {
	return s.getOne(ctx, "?TableAlias.symbol = ?", symbol)
}

func (s *stocks) getOne(ctx context.Context, where string, arg any) (*model.Stock, error) {
	record := &model.Stock{}
	err := s.db.NewSelect().
		Model(record).
		Where(where, arg).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrStockNotFound
		}
		return nil, err
	}

	return record, nil
}

func (s *stocks) Create(ctx context.Context, record *model.Stock) (*model.Stock, error) {
	if _, err := s.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *stocks) Update(ctx context.Context, record *model.Stock) (*model.Stock, error) {
	res, err := s.db.NewUpdate().
		Model(record).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, ErrStockNotFound
	}

	return record, nil
}

func (s *stocks) Delete(ctx context.Context, id int64) error {
	res, err := s.db.NewDelete().
		Model((*model.Stock)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrStockNotFound
	}

	return nil
}
