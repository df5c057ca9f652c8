package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/hmanriquer/expensi-server/internal/respond"
	"github.com/hmanriquer/expensi-server/internal/user"
	"github.com/hmanriquer/expensi-server/internal/validate"
)

// Work factor used when existing accounts were created; raising it only
// affects hashes written from then on.
const bcryptCost = 12

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Pin      string `json:"pin" validate:"required,len=4,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Handler struct {
	Users  user.Repository
	Tokens *TokenManager
}

func NewHandler(users user.Repository, tokens *TokenManager) *Handler {
	return &Handler{Users: users, Tokens: tokens}
}

// Register creates a user account and issues a token. Duplicate emails are
// rejected with a conflict; the lookup is a case-sensitive exact match.
func (h *Handler) Register(c *fiber.Ctx) error {
	req := validate.BodyFrom[RegisterRequest](c)
	ctx := c.Context()

	existing, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "Email already in use")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return err
	}
	hashedPin, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcryptCost)
	if err != nil {
		return err
	}

	created, err := h.Users.Insert(ctx, &user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Pin:      string(hashedPin),
	})
	if err != nil {
		// A concurrent register can slip past the pre-check and hit the
		// unique constraint instead.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return respond.Fail(c, fiber.StatusBadRequest, "Email already in use")
		}
		return err
	}

	token, err := h.Tokens.Sign(created.ID)
	if err != nil {
		return err
	}

	return respond.SuccessWithToken(c, fiber.StatusCreated, token, "user", created.Public())
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same response so accounts cannot be enumerated.
func (h *Handler) Login(c *fiber.Ctx) error {
	req := validate.BodyFrom[LoginRequest](c)

	u, err := h.Users.FindByEmail(c.Context(), req.Email)
	if err != nil {
		return err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return respond.Fail(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := h.Tokens.Sign(u.ID)
	if err != nil {
		return err
	}

	return respond.SuccessWithToken(c, fiber.StatusOK, token, "user", u.Public())
}
