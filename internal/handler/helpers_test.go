package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/models"
)

var (
	adminPrincipal   = &dto.Principal{ID: 1, Username: "admin", Role: models.RoleAdmin, Name: "System Administrator"}
	teacherPrincipal = &dto.Principal{ID: 2, Username: "smith", Role: models.RoleTeacher, Name: "John Smith"}
	studentPrincipal = &dto.Principal{ID: 3, Username: "alice", Role: models.RoleStudent, Name: "Alice Johnson"}
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// newTestApp returns an app whose requests are authenticated as principal.
// A nil principal leaves requests anonymous.
func newTestApp(principal *dto.Principal) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if principal != nil {
			middleware.SetPrincipal(c, *principal)
		}
		return c.Next()
	})
	return app
}

func performJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch v := body.(type) {
		case string:
			reader = bytes.NewBufferString(v)
		default:
			payload, err := json.Marshal(v)
			require.NoError(t, err)
			reader = bytes.NewReader(payload)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	decodeResponse(t, resp, &body)
	return body["error"]
}

func requireSuccess(t *testing.T, resp *http.Response) {
	t.Helper()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]bool
	decodeResponse(t, resp, &body)
	require.True(t, body["success"])
}
