package main

import (
	"context"
	"errors"
	"log"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/google/uuid"

	"github.com/hmanriquer/expensi-server/internal/auth"
	"github.com/hmanriquer/expensi-server/internal/config"
	"github.com/hmanriquer/expensi-server/internal/expense"
	"github.com/hmanriquer/expensi-server/internal/income"
	"github.com/hmanriquer/expensi-server/internal/router"
	"github.com/hmanriquer/expensi-server/internal/storage"
	"github.com/hmanriquer/expensi-server/internal/user"
)

func main() {
	cfg := config.Load()

	if err := storage.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(cfg),
	})

	app.Use(helmet.New())
	app.Use(router.CorsMiddleware())
	app.Use(requestLogger())

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	users := user.NewRepository(pool)

	r := &router.Router{
		AuthHandler:    auth.NewHandler(users, tokens),
		IncomeHandler:  income.NewHandler(income.NewRepository(pool)),
		ExpenseHandler: expense.NewHandler(expense.NewRepository(pool)),
		Protect:        auth.Protect(tokens, users),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler normalizes every uncaught error to the
// {status:"error", statusCode, message} envelope. Outside production the
// response also carries a stack trace.
func errorHandler(cfg config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		payload := fiber.Map{
			"status":     "error",
			"statusCode": code,
			"message":    message,
		}
		if !cfg.IsProduction() {
			payload["stack"] = err.Error() + "\n" + string(debug.Stack())
		}
		return c.Status(code).JSON(payload)
	}
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("X-Request-Id", requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		log.Printf("%s %s %s %d %s", requestID, c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
