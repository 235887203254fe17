package repository

import (
	"database/sql"
	"errors"
	"strings"
)

// ErrStockNotFound is the error for missing stocks
var ErrStockNotFound = errors.New("stock not found")

// ErrCommentNotFound is the error for missing comments
var ErrCommentNotFound = errors.New("comment not found")

// ErrStockAlreadyInPortfolio means the (user, stock) entry already exists;
// an idempotency violation, not a security failure
var ErrStockAlreadyInPortfolio = errors.New("stock already in portfolio")

// ErrStockNotInPortfolio means a delete targeted an absent entry
var ErrStockNotInPortfolio = errors.New("stock not in portfolio")

// IsInvariantViolation checks for portfolio membership violations, which
// surface as client errors rather than server errors
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrStockAlreadyInPortfolio) ||
		errors.Is(err, ErrStockNotInPortfolio)
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isUniqueViolation matches the constraint error text of the supported
// drivers (modernc/mattn sqlite and postgres).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE") ||
		strings.Contains(msg, "duplicate key value")
}
