package httpapi

import (
	"context"
	"errors"

	"stockfolio/auth"
	"stockfolio/model"
	"stockfolio/repository"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
)

// StockStore is the slice of the stock repository the handlers need
type StockStore interface {
	StockFinder
	List(ctx context.Context) ([]*model.Stock, error)
	Create(ctx context.Context, record *model.Stock) (*model.Stock, error)
	Update(ctx context.Context, record *model.Stock) (*model.Stock, error)
	Delete(ctx context.Context, id int64) error
}

// StockController exposes the stock catalog. Reads are public; mutations
// sit behind the admin role at the route level.
type StockController struct {
	Stocks StockStore
	Logger auth.Logger
}

func NewStockController(stocks StockStore, logger auth.Logger) *StockController {
	if logger == nil {
		logger = NopLogger{}
	}
	return &StockController{Stocks: stocks, Logger: logger}
}

// StockRequest payload for create and update
type StockRequest struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"company_name"`
	Purchase    float64 `json:"purchase"`
	LastDiv     float64 `json:"last_div"`
	Industry    string  `json:"industry"`
	MarketCap   int64   `json:"market_cap"`
}

// Validate will run validation rules
func (r StockRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Symbol, validation.Required, validation.Length(1, 10)),
		validation.Field(&r.CompanyName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Purchase, validation.Min(0.0)),
		validation.Field(&r.MarketCap, validation.Min(0)),
	)
}

// List handles GET /api/stocks
func (sc *StockController) List(c *fiber.Ctx) error {
	records, err := sc.Stocks.List(c.UserContext())
	if err != nil {
		sc.Logger.Error("list stocks failed", "error", err)
		return serverError(c)
	}
	return c.JSON(records)
}

// Get handles GET /api/stocks/:id
func (sc *StockController) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid stock id")
	}

	record, err := sc.Stocks.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return notFound(c, "stock not found")
		}
		sc.Logger.Error("stock lookup failed", "stock_id", id, "error", err)
		return serverError(c)
	}

	return c.JSON(record)
}

// Create handles POST /api/stocks
func (sc *StockController) Create(c *fiber.Ctx) error {
	payload := new(StockRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse request body")
	}
	if err := payload.Validate(); err != nil {
		return validationError(c, err)
	}

	record := &model.Stock{
		Symbol:      payload.Symbol,
		CompanyName: payload.CompanyName,
		Purchase:    payload.Purchase,
		LastDiv:     payload.LastDiv,
		Industry:    payload.Industry,
		MarketCap:   payload.MarketCap,
	}

	created, err := sc.Stocks.Create(c.UserContext(), record)
	if err != nil {
		sc.Logger.Error("create stock failed", "symbol", payload.Symbol, "error", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/stocks/:id
func (sc *StockController) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid stock id")
	}

	payload := new(StockRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse request body")
	}
	if err := payload.Validate(); err != nil {
		return validationError(c, err)
	}

	record := &model.Stock{
		ID:          id,
		Symbol:      payload.Symbol,
		CompanyName: payload.CompanyName,
		Purchase:    payload.Purchase,
		LastDiv:     payload.LastDiv,
		Industry:    payload.Industry,
		MarketCap:   payload.MarketCap,
	}

	updated, err := sc.Stocks.Update(c.UserContext(), record)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return notFound(c, "stock not found")
		}
		sc.Logger.Error("update stock failed", "stock_id", id, "error", err)
		return serverError(c)
	}

	return c.JSON(updated)
}

// Delete handles DELETE /api/stocks/:id
func (sc *StockController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid stock id")
	}

	if err := sc.Stocks.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return notFound(c, "stock not found")
		}
		sc.Logger.Error("delete stock failed", "stock_id", id, "error", err)
		return serverError(c)
	}

	return c.JSON(fiber.Map{"message": "stock deleted"})
}
