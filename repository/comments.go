package repository

import (
	"context"

	"stockfolio/model"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Comments is the comment store: lookup by id, by owner, by stock, and the
// CRUD operations the ownership guard gates.
type Comments interface {
	List(ctx context.Context) ([]*model.Comment, error)
	ListByStock(ctx context.Context, stockID int64) ([]*model.Comment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Create(ctx context.Context, record *model.Comment) (*model.Comment, error)
	Update(ctx context.Context, record *model.Comment) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type comments struct {
	db *bun.DB
}

var _ Comments = (*comments)(nil)

func NewCommentsRepository(db *bun.DB) Comments {
	return &comments{db: db}
}

func (c *comments) List(ctx context.Context) ([]*model.Comment, error) {
	var records []*model.Comment
	if err := c.db.NewSelect().Model(&records).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *comments) ListByStock(ctx context.Context, stockID int64) ([]*model.Comment, error) {
	var records []*model.Comment
	err := c.db.NewSelect().
		Model(&records).
		Where("?TableAlias.stock_id = ?", stockID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *comments) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Comment, error) {
	var records []*model.Comment
	err := c.db.NewSelect().
		Model(&records).
		Where("?TableAlias.app_user_id = ?", userID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *comments) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	record := &model.Comment{}
	err := c.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	return record, nil
}

func (c *comments) Create(ctx context.Context, record *model.Comment) (*model.Comment, error) {
	if _, err := c.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

// Update persists title and content only; the owner and stock columns are
// immutable after creation.
func (c *comments) Update(ctx context.Context, record *model.Comment) (*model.Comment, error) {
	res, err := c.db.NewUpdate().
		Model(record).
		Column("title", "content").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, ErrCommentNotFound
	}

	return record, nil
}

func (c *comments) Delete(ctx context.Context, id int64) error {
	res, err := c.db.NewDelete().
		Model((*model.Comment)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrCommentNotFound
	}

	return nil
}
