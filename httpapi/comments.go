package httpapi

import (
	"context"
	"errors"
	"strconv"

	"stockfolio/auth"
	"stockfolio/model"
	"stockfolio/repository"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CommentStore is the slice of the comment repository the handlers need
type CommentStore interface {
	List(ctx context.Context) ([]*model.Comment, error)
	ListByStock(ctx context.Context, stockID int64) ([]*model.Comment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Create(ctx context.Context, record *model.Comment) (*model.Comment, error)
	Update(ctx context.Context, record *model.Comment) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// StockFinder resolves stocks referenced by other handlers
type StockFinder interface {
	GetByID(ctx context.Context, id int64) (*model.Stock, error)
	GetBySymbol(ctx context.Context, symbol string) (*model.Stock, error)
}

// CommentController exposes comment CRUD. Update and delete run the
// ownership guard; being authenticated is not enough.
type CommentController struct {
	Comments CommentStore
	Stocks   StockFinder
	Logger   auth.Logger
}

func NewCommentController(comments CommentStore, stocks StockFinder, logger auth.Logger) *CommentController {
	if logger == nil {
		logger = NopLogger{}
	}
	return &CommentController{Comments: comments, Stocks: stocks, Logger: logger}
}

// CommentEntryRequest payload for create and update
type CommentEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate will run validation rules
func (r CommentEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, 280)),
		validation.Field(&r.Content, validation.Length(0, 2000)),
	)
}

func (r CommentEntryRequest) empty() bool {
	return r.Title == "" && r.Content == ""
}

// ListAll handles GET /api/comments
func (cc *CommentController) ListAll(c *fiber.Ctx) error {
	records, err := cc.Comments.List(c.UserContext())
	if err != nil {
		cc.Logger.Error("list comments failed", "error", err)
		return serverError(c)
	}
	return c.JSON(records)
}

// ListForStock handles GET /api/comments/stock/:stockID
func (cc *CommentController) ListForStock(c *fiber.Ctx) error {
	stockID, err := parseID(c.Params("stockID"))
	if err != nil {
		return badRequest(c, "invalid stock id")
	}

	records, err := cc.Comments.ListByStock(c.UserContext(), stockID)
	if err != nil {
		cc.Logger.Error("list comments for stock failed", "stock_id", stockID, "error", err)
		return serverError(c)
	}
	return c.JSON(records)
}

// ListMine handles GET /api/comments/mine
func (cc *CommentController) ListMine(c *fiber.Ctx) error {
	callerID, ok := callerUUID(c)
	if !ok {
		return unauthorized(c)
	}

	records, err := cc.Comments.ListByUser(c.UserContext(), callerID)
	if err != nil {
		cc.Logger.Error("list own comments failed", "error", err)
		return serverError(c)
	}
	return c.JSON(records)
}

// Create handles POST /api/comments/:stockID
func (cc *CommentController) Create(c *fiber.Ctx) error {
	callerID, ok := callerUUID(c)
	if !ok {
		return unauthorized(c)
	}

	stockID, err := parseID(c.Params("stockID"))
	if err != nil {
		return badRequest(c, "invalid stock id")
	}

	payload := new(CommentEntryRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse request body")
	}
	if err := payload.Validate(); err != nil {
		return validationError(c, err)
	}
	if payload.empty() {
		return badRequest(c, "title or content is required")
	}

	if _, err := cc.Stocks.GetByID(c.UserContext(), stockID); err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return notFound(c, "stock not found")
		}
		cc.Logger.Error("stock lookup failed", "stock_id", stockID, "error", err)
		return serverError(c)
	}

	record := &model.Comment{
		Title:     payload.Title,
		Content:   payload.Content,
		AppUserID: callerID,
		StockID:   stockID,
	}

	created, err := cc.Comments.Create(c.UserContext(), record)
	if err != nil {
		cc.Logger.Error("create comment failed", "error", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/comments/:commentID. Title and content are
// replaced wholesale; the owner and stock never change.
func (cc *CommentController) Update(c *fiber.Ctx) error {
	callerID, ok := callerUUID(c)
	if !ok {
		return unauthorized(c)
	}

	commentID, err := parseID(c.Params("commentID"))
	if err != nil {
		return badRequest(c, "invalid comment id")
	}

	payload := new(CommentEntryRequest)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse request body")
	}
	if err := payload.Validate(); err != nil {
		return validationError(c, err)
	}
	if payload.empty() {
		return badRequest(c, "title or content is required")
	}

	existing, err := cc.Comments.GetByID(c.UserContext(), commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return notFound(c, "comment not found")
		}
		cc.Logger.Error("comment lookup failed", "comment_id", commentID, "error", err)
		return serverError(c)
	}

	if err := auth.AuthorizeOwnership(callerID, existing.AppUserID); err != nil {
		return forbidden(c)
	}

	existing.Title = payload.Title
	existing.Content = payload.Content

	updated, err := cc.Comments.Update(c.UserContext(), existing)
	if err != nil {
		cc.Logger.Error("update comment failed", "comment_id", commentID, "error", err)
		return serverError(c)
	}

	return c.JSON(updated)
}

// Delete handles DELETE /api/comments/:commentID. The ownership guard runs
// here too; only the comment's creator may remove it.
func (cc *CommentController) Delete(c *fiber.Ctx) error {
	callerID, ok := callerUUID(c)
	if !ok {
		return unauthorized(c)
	}

	commentID, err := parseID(c.Params("commentID"))
	if err != nil {
		return badRequest(c, "invalid comment id")
	}

	existing, err := cc.Comments.GetByID(c.UserContext(), commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return notFound(c, "comment not found")
		}
		cc.Logger.Error("comment lookup failed", "comment_id", commentID, "error", err)
		return serverError(c)
	}

	if err := auth.AuthorizeOwnership(callerID, existing.AppUserID); err != nil {
		return forbidden(c)
	}

	if err := cc.Comments.Delete(c.UserContext(), commentID); err != nil {
		cc.Logger.Error("delete comment failed", "comment_id", commentID, "error", err)
		return serverError(c)
	}

	return c.JSON(fiber.Map{"message": "comment deleted"})
}

func callerUUID(c *fiber.Ctx) (uuid.UUID, bool) {
	identity, ok := IdentityFromCtx(c)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(identity.ID())
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": message,
	})
}
