package validate

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Note   string `json:"note"`
}

func newSampleApp() *fiber.App {
	app := fiber.New()
	app.Post("/sample", Body[sampleRequest](), func(c *fiber.Ctx) error {
		return c.JSON(BodyFrom[sampleRequest](c))
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/sample", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestBodyPassesValidRequestToHandler(t *testing.T) {
	app := newSampleApp()

	resp, body := post(t, app, `{"email":"ada@example.com","amount":5}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ada@example.com", body["email"])
	assert.Equal(t, float64(5), body["amount"])
}

func TestBodyRejectsInvalidRequest(t *testing.T) {
	app := newSampleApp()

	resp, body := post(t, app, `{"email":"not-an-email","amount":-1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Validation failed", body["message"])

	errs := body["errors"].([]any)
	require.Len(t, errs, 2)

	// Field names come from json tags, not struct field names.
	fields := make(map[string]string)
	for _, e := range errs {
		fe := e.(map[string]any)
		fields[fe["field"].(string)] = fe["message"].(string)
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "amount")
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be greater than 0", fields["amount"])
}

func TestBodyRejectsMalformedJSON(t *testing.T) {
	app := newSampleApp()

	resp, body := post(t, app, `{"email":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed", body["message"])
}

func TestBodyRejectsMissingRequiredFields(t *testing.T) {
	app := newSampleApp()

	resp, body := post(t, app, `{"note":"no required fields"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	fields := make([]string, 0)
	for _, e := range body["errors"].([]any) {
		fields = append(fields, e.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"email", "amount"}, fields)
}
