package income

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

	inc := &Income{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Source:      req.Source,
		Date:        date,
		IsRecurring: false,
		Frequency:   FrequencyOneTime,
	}
	if req.IsRecurring != nil {
		inc.IsRecurring = *req.IsRecurring
	}
	if req.Frequency != nil && *req.Frequency != "" {
		inc.Frequency = *req.Frequency
	}

	created, err := h.Repo.Insert(c.Context(), inc)
	if err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusCreated, "income", created)
}

func (h *Handler) List(c *fiber.Ctx) error {
	incomes, err := h.Repo.List(c.Context())
	if err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusOK, "incomes", incomes)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	inc, err := h.Repo.Get(c.Context(), parseID(c))
	if err != nil {
		return err
	}
	if inc == nil {
		return respond.Fail(c, fiber.StatusNotFound, "Income not found")
	}
	return respond.Success(c, fiber.StatusOK, "income", inc)
}

// Update applies only the fields present in the body. Amount, source and
// date use a truthiness check that skips zero values and empty strings;
// isRecurring is applied whenever the key is present, false included.
func (h *Handler) Update(c *fiber.Ctx) error {
	req := validate.BodyFrom[UpdateRequest](c)

	var p Patch
	if req.Amount != nil && *req.Amount != 0 {
		p.Amount = req.Amount
	}
	if req.Source != nil && *req.Source != "" {
		p.Source = req.Source
	}
	if req.Date != nil && *req.Date != "" {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return respond.Fail(c, fiber.StatusBadRequest, "date must be an ISO 8601 datetime")
		}
		p.Date = &date
	}
	p.IsRecurring = req.IsRecurring
	if req.Frequency != nil && *req.Frequency != "" {
		p.Frequency = req.Frequency
	}

	updated, err := h.Repo.Update(c.Context(), parseID(c), p)
	if err != nil {
		return err
	}
	if updated == nil {
		return respond.Fail(c, fiber.StatusNotFound, "Income not found")
	}
	return respond.Success(c, fiber.StatusOK, "income", updated)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	deleted, err := h.Repo.Delete(c.Context(), parseID(c))
	if err != nil {
		return err
	}
	if !deleted {
		return respond.Fail(c, fiber.StatusNotFound, "Income not found")
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
