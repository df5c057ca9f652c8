package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmanriquer/expensi-server/internal/auth"
	"github.com/hmanriquer/expensi-server/internal/expense"
	"github.com/hmanriquer/expensi-server/internal/income"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	r := &Router{
		AuthHandler:    auth.NewHandler(nil, nil),
		IncomeHandler:  income.NewHandler(nil),
		ExpenseHandler: expense.NewHandler(nil),
	}
	r.RegisterRoutes(app)
	return app
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Expendi API is running", body["message"])
}

func TestUnmatchedRouteNamesPath(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nonexistent", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "fail", body["status"])
	assert.Equal(t, "Route /api/v1/nonexistent not found", body["message"])
}
