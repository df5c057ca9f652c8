package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hmanriquer/expensi-server/internal/auth"
	"github.com/hmanriquer/expensi-server/internal/expense"
	"github.com/hmanriquer/expensi-server/internal/income"
	"github.com/hmanriquer/expensi-server/internal/respond"
	"github.com/hmanriquer/expensi-server/internal/validate"
)

type Router struct {
	AuthHandler    *auth.Handler
	IncomeHandler  *income.Handler
	ExpenseHandler *expense.Handler

	// Protect is the access guard. It is deliberately not mounted on the
	// income/expense routes: those resources have always been reachable
	// without a token and the docs have not caught up. Wire it here once
	// that question is settled.
	Protect fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Expendi API is running",
		})
	})

	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/register", validate.Body[auth.RegisterRequest](), r.AuthHandler.Register)
	authGroup.Post("/login", validate.Body[auth.LoginRequest](), r.AuthHandler.Login)

	incomes := app.Group("/api/v1/incomes")
	incomes.Get("/", r.IncomeHandler.List)
	incomes.Post("/", validate.Body[income.CreateRequest](), r.IncomeHandler.Create)
	incomes.Get("/:id", r.IncomeHandler.Get)
	incomes.Patch("/:id", validate.Body[income.UpdateRequest](), r.IncomeHandler.Update)
	incomes.Delete("/:id", r.IncomeHandler.Delete)

	expenses := app.Group("/api/v1/expenses")
	expenses.Get("/", r.ExpenseHandler.List)
	expenses.Post("/", validate.Body[expense.CreateRequest](), r.ExpenseHandler.Create)
	expenses.Get("/report", r.ExpenseHandler.MonthlyReport)
	expenses.Get("/:id", r.ExpenseHandler.Get)
	expenses.Patch("/:id", validate.Body[expense.UpdateRequest](), r.ExpenseHandler.Update)
	expenses.Delete("/:id", r.ExpenseHandler.Delete)

	// Fallback for unmatched routes.
	app.Use(func(c *fiber.Ctx) error {
		return respond.Fail(c, fiber.StatusNotFound,
			"Route "+c.OriginalURL()+" not found")
	})
}
