package httpapi

import (
	"context"
	"errors"

	"stockfolio/auth"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

// SessionFacade orchestrates login and registration
type SessionFacade interface {
	Login(ctx context.Context, username, password string) (string, auth.Identity, error)
	Register(ctx context.Context, input auth.RegisterInput) (string, auth.Identity, error)
}

// AccountController exposes login and registration
type AccountController struct {
	Auther SessionFacade
	Logger auth.Logger
}

func NewAccountController(auther SessionFacade, logger auth.Logger) *AccountController {
	if logger == nil {
		logger = NopLogger{}
	}
	return &AccountController{Auther: auther, Logger: logger}
}

// LoginRequest payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// RegisterRequest payload
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.By(auth.ValidatePasswordComplexity)),
	)
}

// NewUserResponse is returned by both login and registration
type NewUserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// Login handles POST /api/account/login. Unknown user and bad password
// produce the same body and status.
func (a *AccountController) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		return validationError(c, err)
	}

	token, identity, err := a.Auther.Login(c.UserContext(), payload.Username, payload.Password)
	if err != nil {
		if auth.IsAuthenticationError(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "invalid username or password",
			})
		}
		a.Logger.Error("login failed unexpectedly", "error", err)
		return serverError(c)
	}

	return c.JSON(NewUserResponse{
		Username: identity.Username(),
		Email:    identity.Email(),
		Token:    token,
	})
}

// Register handles POST /api/account/register
func (a *AccountController) Register(c *fiber.Ctx) error {
	payload := new(RegisterRequest)

	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		return validationError(c, err)
	}

	input := auth.RegisterInput{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
	}

	token, identity, err := a.Auther.Register(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDuplicateUser):
			// creation failures, duplicates included, report as server errors
			a.Logger.Warn("registration rejected duplicate identity", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "username or email already registered",
			})
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrNoEmptyString):
			return badRequest(c, err.Error())
		case errors.Is(err, auth.ErrPartialRegistration):
			a.Logger.Error("registration left no identity behind", "error", err)
			return serverError(c)
		default:
			a.Logger.Error("registration failed unexpectedly", "error", err)
			return serverError(c)
		}
	}

	return c.JSON(NewUserResponse{
		Username: identity.Username(),
		Email:    identity.Email(),
		Token:    token,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
	})
}

func validationError(c *fiber.Ctx, err error) error {
	var ve validation.Errors
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  ve,
		})
	}
	return badRequest(c, err.Error())
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
	})
}
