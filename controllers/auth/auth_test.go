package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"
	authRoutes "learnhub/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Course{}, &models.Lesson{}, &models.Enrollment{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestSignupCreatesUserRole(t *testing.T) {
	app := setupApp(t)

	// A role field in the body must not grant privileges
	resp, raw := doJSON(t, app, "POST", "/api/auth/signup", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
		"role":     "admin",
	}, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, models.RoleUser, body.User.Role)
	assert.Equal(t, "alice@example.com", body.User.Email)

	// Password never serializes
	assert.NotContains(t, string(raw), "secret123")
	var generic map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &generic))
	userObj, ok := generic["user"].(map[string]interface{})
	require.True(t, ok)
	_, hasPassword := userObj["password"]
	assert.False(t, hasPassword)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/auth/signup", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw := doJSON(t, app, "POST", "/api/auth/signup", map[string]string{
		"name": "Other", "email": "alice@example.com", "password": "different456",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Email already exists")
}

func TestSignupValidation(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, "POST", "/api/auth/signup", map[string]string{
		"name": "", "email": "alice@example.com", "password": "secret123",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "name", body.Field)
	assert.NotEmpty(t, body.Message)

	resp, raw = doJSON(t, app, "POST", "/api/auth/signup", map[string]string{
		"name": "Alice", "email": "not-an-email", "password": "secret123",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "email", body.Field)
}

func TestLogin(t *testing.T) {
	app := setupApp(t)

	doJSON(t, app, "POST", "/api/auth/signup", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	}, "")

	resp, raw := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, models.RoleUser, body.User.Role)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	app := setupApp(t)

	doJSON(t, app, "POST", "/api/auth/signup", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	}, "")

	// Wrong password and unknown email return the same body: no
	// user-existence leakage
	respWrong, rawWrong := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "wrongpass",
	}, "")
	respUnknown, rawUnknown := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email": "nobody@example.com", "password": "secret123",
	}, "")

	assert.Equal(t, fiber.StatusUnauthorized, respWrong.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, respUnknown.StatusCode)
	assert.JSONEq(t, string(rawWrong), string(rawUnknown))
}

func TestMe(t *testing.T) {
	app := setupApp(t)

	_, raw := doJSON(t, app, "POST", "/api/auth/signup", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	}, "")
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &signup))

	resp, raw := doJSON(t, app, "GET", "/api/auth/me", nil, signup.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.Unmarshal(raw, &user))
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotContains(t, string(raw), "password")

	resp, _ = doJSON(t, app, "GET", "/api/auth/me", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
