package expense

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hmanriquer/expensi-server/internal/respond"
	"github.com/hmanriquer/expensi-server/internal/validate"
)

type Handler struct {
	Repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	req := validate.BodyFrom[CreateRequest](c)

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "date must be an ISO 8601 datetime")
	}

	created, err := h.Repo.Insert(c.Context(), &Expense{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusCreated, "expense", created)
}

func (h *Handler) List(c *fiber.Ctx) error {
	expenses, err := h.Repo.List(c.Context())
	if err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusOK, "expenses", expenses)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	exp, err := h.Repo.Get(c.Context(), parseID(c))
	if err != nil {
		return err
	}
	if exp == nil {
		return respond.Fail(c, fiber.StatusNotFound, "Expense not found")
	}
	return respond.Success(c, fiber.StatusOK, "expense", exp)
}

// Update applies only the fields present in the body. Amount, category,
// description and date use a truthiness check that skips zero values and
// empty strings.
func (h *Handler) Update(c *fiber.Ctx) error {
	req := validate.BodyFrom[UpdateRequest](c)

	var p Patch
	if req.Amount != nil && *req.Amount != 0 {
		p.Amount = req.Amount
	}
	if req.Category != nil && *req.Category != "" {
		p.Category = req.Category
	}
	if req.Description != nil && *req.Description != "" {
		p.Description = req.Description
	}
	if req.Date != nil && *req.Date != "" {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return respond.Fail(c, fiber.StatusBadRequest, "date must be an ISO 8601 datetime")
		}
		p.Date = &date
	}

	updated, err := h.Repo.Update(c.Context(), parseID(c), p)
	if err != nil {
		return err
	}
	if updated == nil {
		return respond.Fail(c, fiber.StatusNotFound, "Expense not found")
	}
	return respond.Success(c, fiber.StatusOK, "expense", updated)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	deleted, err := h.Repo.Delete(c.Context(), parseID(c))
	if err != nil {
		return err
	}
	if !deleted {
		return respond.Fail(c, fiber.StatusNotFound, "Expense not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID reads the id path parameter. A non-numeric id maps to zero,
// which matches no row and falls through to the not-found response.
func parseID(c *fiber.Ctx) int {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0
	}
	return id
}
