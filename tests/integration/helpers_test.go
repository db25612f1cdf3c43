package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/config"
	"github.com/noah-isme/school-admin-api/internal/database"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/router"
	"github.com/noah-isme/school-admin-api/internal/service"
)

const sessionCookieName = "school_session"

func setupSchoolApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.ConnectSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	logger := zerolog.New(io.Discard)
	hasher := service.NewBcryptHasher(bcrypt.MinCost)

	_, err = service.NewSeedService(db, hasher, true, logger).Seed(context.Background())
	require.NoError(t, err)

	cfg := config.Config{
		AppName:         "School Admin API",
		AppEnv:          "test",
		SessionCookie:   sessionCookieName,
		LoginRateLimit:  1000,
		LoginRateWindow: time.Minute,
	}

	sessions := middleware.NewSessions(middleware.SessionConfig{CookieName: cfg.SessionCookie}, logger)
	deps, err := router.NewDependencies(router.Options{
		Config:   cfg,
		DB:       db,
		Sessions: sessions,
		Hasher:   hasher,
		Logger:   logger,
	})
	require.NoError(t, err)

	app := fiber.New()
	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, deps)

	return app, db
}

// apiClient replays the session cookie between requests, like a browser.
type apiClient struct {
	t      *testing.T
	app    *fiber.App
	cookie *http.Cookie
}

func newClient(t *testing.T, app *fiber.App) *apiClient {
	return &apiClient{t: t, app: app}
}

func (c *apiClient) do(method, path string, body interface{}) *http.Response {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(&http.Cookie{Name: c.cookie.Name, Value: c.cookie.Value})
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)

	for _, cookie := range resp.Cookies() {
		if cookie.Name != sessionCookieName {
			continue
		}
		if cookie.Value == "" || cookie.MaxAge < 0 {
			c.cookie = nil
			continue
		}
		c.cookie = cookie
	}
	return resp
}

func (c *apiClient) login(username, password string) *http.Response {
	c.t.Helper()
	return c.do(http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password})
}

func loggedIn(t *testing.T, app *fiber.App, username, password string) *apiClient {
	t.Helper()
	client := newClient(t, app)
	resp := client.login(username, password)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, client.cookie)
	return client
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target), string(data))
}

func requireStatus(t *testing.T, resp *http.Response, status int) {
	t.Helper()
	if resp.StatusCode != status {
		data, _ := io.ReadAll(resp.Body)
		require.Equal(t, status, resp.StatusCode, string(data))
	}
}
