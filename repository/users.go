package repository

import (
	"context"
	"fmt"

	"stockfolio/auth"
	"stockfolio/model"

	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the credential store: lookup by name or id, atomic registration
// with role assignment, and role management.
type Users interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	RegisterIdentity(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	AssignRoleTx(ctx context.Context, tx bun.IDB, userID uuid.UUID, role model.Role) error
}

type users struct {
	db *bun.DB
}

var (
	_ Users                  = (*users)(nil)
	_ auth.UserStore         = (*users)(nil)
	_ auth.IdentityRegistrar = (*users)(nil)
)

func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

func (a *users) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return a.getOne(ctx, "?TableAlias.username = ?", username)
}

func (a *users) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return a.getOne(ctx, "?TableAlias.id = ?", id)
}

func (a *users) getOne(ctx context.Context, where string, arg any) (*model.User, error) {
	record := &model.User{}
	err := a.db.NewSelect().
		Model(record).
		Relation("Roles").
		Where(where, arg).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if isRecordNotFound(err) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, err
	}

	return record, nil
}

// RegisterIdentity creates the user and its default role assignment in one
// transaction. A failed role insert rolls the user back, so no identity can
// exist without its role.
func (a *users) RegisterIdentity(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	record := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	prepareUserDefaults(record)

	err := a.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		taken, err := tx.NewSelect().
			Model((*model.User)(nil)).
			Where("?TableAlias.username = ? OR ?TableAlias.email = ?", username, email).
			Exists(ctx)
		if err != nil {
			return err
		}
		if taken {
			return auth.ErrDuplicateUser
		}

		if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
			if isUniqueViolation(err) {
				return auth.ErrDuplicateUser
			}
			return err
		}

		if err := a.AssignRoleTx(ctx, tx, record.ID, model.RoleUser); err != nil {
			return fmt.Errorf("%w: %v", auth.ErrPartialRegistration, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	record.Roles = []*model.UserRole{{UserID: record.ID, Role: model.RoleUser}}

	return record, nil
}

func (a *users) AssignRoleTx(ctx context.Context, tx bun.IDB, userID uuid.UUID, role model.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q", role)
	}

	assignment := &model.UserRole{UserID: userID, Role: role}
	_, err := tx.NewInsert().
		Model(assignment).
		On("CONFLICT DO NOTHING").
		Exec(ctx)

	return err
}

func prepareUserDefaults(record *model.User) {
	if record == nil {
		return
	}

	if record.ID == uuid.Nil {
		// Deterministic id derived from the email keeps re-registration
		// attempts from minting a second identity for the same address.
		if id, err := hashid.NewUUID(record.Email); err == nil {
			record.ID = id
		} else {
			record.ID = uuid.New()
		}
	}
}
