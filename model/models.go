package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Role is a user's assigned role
type Role string

const (
	// RoleUser is the default role assigned at registration
	RoleUser Role = "user"
	// RoleAdmin may manage the stock catalog
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is the user model
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID   `bun:"id,pk,type:uuid" json:"id,omitempty"`
	Username      string      `bun:"username,notnull,unique" json:"username,omitempty"`
	Email         string      `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string      `bun:"password_hash,notnull" json:"-"`
	Roles         []*UserRole `bun:"rel:has-many,join:id=user_id" json:"roles,omitempty"`
	CreatedAt     *time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// HasRole reports whether the user has been assigned the given role
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r != nil && r.Role == role {
			return true
		}
	}
	return false
}

// RoleNames returns the assigned roles as plain strings
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		if r != nil {
			names = append(names, string(r.Role))
		}
	}
	return names
}

// UserRole is one role assignment; a user holds a set of these
type UserRole struct {
	bun.BaseModel `bun:"table:user_roles,alias:url"`
	UserID        uuid.UUID `bun:"user_id,pk,type:uuid" json:"user_id,omitempty"`
	Role          Role      `bun:"role,pk" json:"role,omitempty"`
}

// Stock is a listed stock; owned by no user
type Stock struct {
	bun.BaseModel `bun:"table:stocks,alias:stk"`
	ID            int64   `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Symbol        string  `bun:"symbol,notnull,unique" json:"symbol,omitempty"`
	CompanyName   string  `bun:"company_name,notnull" json:"company_name,omitempty"`
	Purchase      float64 `bun:"purchase" json:"purchase,omitempty"`
	LastDiv       float64 `bun:"last_div" json:"last_div,omitempty"`
	Industry      string  `bun:"industry" json:"industry,omitempty"`
	MarketCap     int64   `bun:"market_cap" json:"market_cap,omitempty"`
}

// Comment is a user's note on a stock. AppUserID is set at creation and
// never changes; only that user may update or delete the comment.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cmt"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title,omitempty"`
	Content       string     `bun:"content,notnull" json:"content,omitempty"`
	AppUserID     uuid.UUID  `bun:"app_user_id,notnull,type:uuid" json:"app_user_id,omitempty"`
	StockID       int64      `bun:"stock_id,notnull" json:"stock_id,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// PortfolioEntry is the (user, stock) join row. The composite primary key
// keeps membership binary at the store level.
type PortfolioEntry struct {
	bun.BaseModel `bun:"table:portfolios,alias:pf"`
	AppUserID     uuid.UUID `bun:"app_user_id,pk,type:uuid" json:"app_user_id,omitempty"`
	StockID       int64     `bun:"stock_id,pk" json:"stock_id,omitempty"`
}
