package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
)

func gatedApp(role models.Role, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			SetPrincipal(c, dto.Principal{ID: 1, Username: "user", Role: role})
		}
		return c.Next()
	})
	app.Use(gate)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func gateStatus(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == fiber.StatusOK {
		return resp.StatusCode, ""
	}
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body["error"]
}

func TestRequireAuth(t *testing.T) {
	status, msg := gateStatus(t, gatedApp("", RequireAuth()))
	require.Equal(t, fiber.StatusUnauthorized, status)
	require.Equal(t, "Unauthorized", msg)

	status, _ = gateStatus(t, gatedApp(models.RoleStudent, RequireAuth()))
	require.Equal(t, fiber.StatusOK, status)
}

func TestRequireRoleAdmin(t *testing.T) {
	cases := []struct {
		role   models.Role
		status int
		msg    string
	}{
		{"", fiber.StatusUnauthorized, "Unauthorized"},
		{models.RoleStudent, fiber.StatusForbidden, "Admin access required"},
		{models.RoleTeacher, fiber.StatusForbidden, "Admin access required"},
		{models.RoleAdmin, fiber.StatusOK, ""},
	}

	for _, tc := range cases {
		status, msg := gateStatus(t, gatedApp(tc.role, RequireRole(models.RoleAdmin)))
		require.Equal(t, tc.status, status, "role %q", tc.role)
		require.Equal(t, tc.msg, msg, "role %q", tc.role)
	}
}

func TestRequireRoleTeacherAdmitsAdmins(t *testing.T) {
	status, msg := gateStatus(t, gatedApp(models.RoleStudent, RequireRole(models.RoleTeacher)))
	require.Equal(t, fiber.StatusForbidden, status)
	require.Equal(t, "Forbidden", msg)

	status, _ = gateStatus(t, gatedApp(models.RoleTeacher, RequireRole(models.RoleTeacher)))
	require.Equal(t, fiber.StatusOK, status)

	status, _ = gateStatus(t, gatedApp(models.RoleAdmin, RequireRole(models.RoleTeacher)))
	require.Equal(t, fiber.StatusOK, status)
}
