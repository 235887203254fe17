package httpapi

import (
	"stockfolio/auth"
	"stockfolio/model"
	"stockfolio/repository"

	"github.com/gofiber/fiber/v2"
)

// Deps are the collaborators the HTTP surface needs
type Deps struct {
	Auther   *auth.Auther
	Provider auth.IdentityProvider
	Repo     repository.Manager
	Logger   auth.Logger
	AppName  string
}

// NewRouter builds the fiber application and mounts all routes
func NewRouter(deps Deps) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	appName := deps.AppName
	if appName == "" {
		appName = "stockfolio"
	}

	app := fiber.New(fiber.Config{
		AppName: appName,
	})

	requireAuth := RequireAuth(deps.Auther.TokenService(), deps.Provider, logger)

	account := NewAccountController(deps.Auther, logger)
	stocks := NewStockController(deps.Repo.Stocks(), logger)
	comments := NewCommentController(deps.Repo.Comments(), deps.Repo.Stocks(), logger)
	portfolio := NewPortfolioController(deps.Repo.Portfolios(), deps.Repo.Stocks(), logger)

	api := app.Group("/api")

	api.Post("/account/register", account.Register)
	api.Post("/account/login", account.Login)

	api.Get("/stocks", stocks.List)
	api.Get("/stocks/:id", stocks.Get)
	api.Post("/stocks", requireAuth, RequireRole(string(model.RoleAdmin)), stocks.Create)
	api.Put("/stocks/:id", requireAuth, RequireRole(string(model.RoleAdmin)), stocks.Update)
	api.Delete("/stocks/:id", requireAuth, RequireRole(string(model.RoleAdmin)), stocks.Delete)

	api.Get("/comments", comments.ListAll)
	api.Get("/comments/mine", requireAuth, comments.ListMine)
	api.Get("/comments/stock/:stockID", comments.ListForStock)
	api.Post("/comments/:stockID", requireAuth, comments.Create)
	api.Put("/comments/:commentID", requireAuth, comments.Update)
	api.Delete("/comments/:commentID", requireAuth, comments.Delete)

	api.Get("/portfolio", requireAuth, portfolio.List)
	api.Post("/portfolio", requireAuth, portfolio.Add)
	api.Delete("/portfolio/:symbol", requireAuth, portfolio.Remove)

	return app
}
