package repository

import (
	"errors"
	"log"

	"github.com/uptrace/bun"
)

// Manager exposes all repositories. Transactional work lives inside the
// repositories themselves; registration runs its user and role writes in
// one transaction at the store.
type Manager interface {
	Users() Users
	Stocks() Stocks
	Comments() Comments
	Portfolios() Portfolios
	Validate() error
	MustValidate()
}

type mngr struct {
	users      Users
	stocks     Stocks
	comments   Comments
	portfolios Portfolios
}

func NewManager(db *bun.DB) Manager {
	return &mngr{
		users:      NewUsersRepository(db),
		stocks:     NewStocksRepository(db),
		comments:   NewCommentsRepository(db),
		portfolios: NewPortfoliosRepository(db),
	}
}

func (m *mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.stocks == nil {
		return errors.New("repository stocks should be initialized")
	}

	if m.comments == nil {
		return errors.New("repository comments should be initialized")
	}

	if m.portfolios == nil {
		return errors.New("repository portfolios should be initialized")
	}

	return nil
}

func (m *mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m *mngr) Users() Users {
	return m.users
}

func (m *mngr) Stocks() Stocks {
	return m.stocks
}

func (m *mngr) Comments() Comments {
	return m.comments
}

func (m *mngr) Portfolios() Portfolios {
	return m.portfolios
}
