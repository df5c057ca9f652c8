package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hmanriquer/expensi-server/internal/user"
	"github.com/hmanriquer/expensi-server/internal/validate"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User), nextID: 1}
}

func (f *fakeUserRepo) Insert(_ context.Context, u *user.User) (*user.User, error) {
	stored := *u
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.nextID++
	f.byEmail[stored.Email] = &stored
	return &stored, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func newAuthApp(users user.Repository) *fiber.App {
	app := fiber.New()
	h := NewHandler(users, NewTokenManager("testsecret", time.Hour))
	app.Post("/api/v1/auth/register", validate.Body[RegisterRequest](), h.Register)
	app.Post("/api/v1/auth/login", validate.Body[LoginRequest](), h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestRegisterCreatesUserAndIssuesToken(t *testing.T) {
	app := newAuthApp(newFakeUserRepo())

	resp, body := postJSON(t, app, "/api/v1/auth/register",
		`{"name":"Ada","email":"ada@example.com","password":"secret1","pin":"1234"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["token"])

	u := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, float64(1), u["id"])
	assert.Equal(t, "Ada", u["name"])
	assert.Equal(t, "ada@example.com", u["email"])
	assert.NotContains(t, u, "password")
	assert.NotContains(t, u, "pin")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	app := newAuthApp(repo)

	payload := `{"name":"Ada","email":"ada@example.com","password":"secret1","pin":"1234"}`
	resp, _ := postJSON(t, app, "/api/v1/auth/register", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/api/v1/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "fail", body["status"])
	assert.Equal(t, "Email already in use", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	app := newAuthApp(newFakeUserRepo())

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"email":"a@b.com","password":"secret1","pin":"1234"}`, "name"},
		{"bad email", `{"name":"A","email":"nope","password":"secret1","pin":"1234"}`, "email"},
		{"short password", `{"name":"A","email":"a@b.com","password":"short","pin":"1234"}`, "password"},
		{"short pin", `{"name":"A","email":"a@b.com","password":"secret1","pin":"12"}`, "pin"},
		{"alpha pin", `{"name":"A","email":"a@b.com","password":"secret1","pin":"abcd"}`, "pin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, app, "/api/v1/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Validation failed", body["message"])

			fields := make([]string, 0)
			for _, e := range body["errors"].([]any) {
				fields = append(fields, e.(map[string]any)["field"].(string))
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), &user.User{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: string(hash),
		Pin:      string(hash),
	})
	require.NoError(t, err)
	app := newAuthApp(repo)

	t.Run("correct credentials", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/auth/login",
			`{"email":"ada@example.com","password":"secret1"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "success", body["status"])
		assert.NotEmpty(t, body["token"])
	})

	// Wrong password and unknown email must be indistinguishable.
	t.Run("wrong password", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/auth/login",
			`{"email":"ada@example.com","password":"wrong-1"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Incorrect email or password", body["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/v1/auth/login",
			`{"email":"ghost@example.com","password":"secret1"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Incorrect email or password", body["message"])
	})
}
