package httpapi

import (
	"context"
	"errors"

	"stockfolio/auth"
	"stockfolio/model"
	"stockfolio/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PortfolioStore is the slice of the portfolio repository the handlers need
type PortfolioStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Stock, error)
	Add(ctx context.Context, userID uuid.UUID, stockID int64) error
	Remove(ctx context.Context, userID uuid.UUID, stockID int64) error
}

// PortfolioController manages the caller's own portfolio. Membership
// violations are client errors: the transition is already satisfied or
// impossible, nothing failed server-side.
type PortfolioController struct {
	Portfolios PortfolioStore
	Stocks     StockFinder
	Logger     auth.Logger
}

func NewPortfolioController(portfolios PortfolioStore, stocks StockFinder, logger auth.Logger) *PortfolioController {
	if logger == nil {
		logger = NopLogger{}
	}
	return &PortfolioController{Portfolios: portfolios, Stocks: stocks, Logger: logger}
}

// List handles GET /api/portfolio
func (pc *PortfolioController) List(c *fiber.Ctx) error {
	callerID, ok := callerUUID(c)
	if !ok {
		return unauthorized(c)
	}

	records, err := pc.Portfolios.ListByUser(c.UserContext(), callerID)
	if err != nil {
		pc.Logger.Error("list portfolio failed", "error", err)
		return serverError(c)
	}

	return c.JSON(records)
}

// Add handles POST /api/portfolio?symbol=S
func (pc *PortfolioController) Add(c *fiber.Ctx) error {
	callerID, ok := callerUUID(c)
	if !ok {
		return unauthorized(c)
	}

	symbol := c.Query("symbol")
	if symbol == "" {
		return badRequest(c, "stock symbol is required")
	}

	stock, err := pc.Stocks.GetBySymbol(c.UserContext(), symbol)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return notFound(c, "stock not found")
		}
		pc.Logger.Error("stock lookup failed", "symbol", symbol, "error", err)
		return serverError(c)
	}

	if err := pc.Portfolios.Add(c.UserContext(), callerID, stock.ID); err != nil {
		if errors.Is(err, repository.ErrStockAlreadyInPortfolio) {
			return badRequest(c, "stock already exists in portfolio")
		}
		pc.Logger.Error("portfolio add failed", "symbol", symbol, "error", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": stock.CompanyName + " added to portfolio",
	})
}

// Remove handles DELETE /api/portfolio/:symbol
func (pc *PortfolioController) Remove(c *fiber.Ctx) error {
	callerID, ok := callerUUID(c)
	if !ok {
		return unauthorized(c)
	}

	symbol := c.Params("symbol")
	if symbol == "" {
		return badRequest(c, "stock symbol is required")
	}

	stock, err := pc.Stocks.GetBySymbol(c.UserContext(), symbol)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return notFound(c, "stock not found")
		}
		pc.Logger.Error("stock lookup failed", "symbol", symbol, "error", err)
		return serverError(c)
	}

	if err := pc.Portfolios.Remove(c.UserContext(), callerID, stock.ID); err != nil {
		if errors.Is(err, repository.ErrStockNotInPortfolio) {
			return badRequest(c, "stock does not exist in portfolio")
		}
		pc.Logger.Error("portfolio remove failed", "symbol", symbol, "error", err)
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"message": "stock removed from portfolio",
	})
}
