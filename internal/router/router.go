package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/school-admin-api/internal/config"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	Sessions     *middleware.Sessions
	LoginLimiter fiber.Handler
	Database     handler.Pinger

	AuthHandler         *handler.AuthHandler
	DashboardHandler    *handler.DashboardHandler
	StudentHandler      *handler.StudentHandler
	TeacherHandler      *handler.TeacherHandler
	ClassHandler        *handler.ClassHandler
	SubjectHandler      *handler.SubjectHandler
	AttendanceHandler   *handler.AttendanceHandler
	GradeHandler        *handler.GradeHandler
	FeeHandler          *handler.FeeHandler
	AnnouncementHandler *handler.AnnouncementHandler
	TimetableHandler    *handler.TimetableHandler
	ActivityHandler     *handler.ActivityHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg, deps.Database))

	if deps.Sessions != nil {
		api.Use(deps.Sessions.Load())
	}

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"), deps.LoginLimiter)
	}

	// Everything below needs a session; write gates are applied per route by each handler.
	authenticated := func(prefix string) fiber.Router {
		return api.Group(prefix, middleware.RequireAuth())
	}

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(authenticated("/dashboard"))
	}
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(authenticated("/students"))
	}
	if deps.TeacherHandler != nil {
		deps.TeacherHandler.Register(authenticated("/teachers"))
	}
	if deps.ClassHandler != nil {
		deps.ClassHandler.Register(authenticated("/classes"))
	}
	if deps.SubjectHandler != nil {
		deps.SubjectHandler.Register(authenticated("/subjects"))
	}
	if deps.AttendanceHandler != nil {
		deps.AttendanceHandler.Register(authenticated("/attendance"))
	}
	if deps.GradeHandler != nil {
		deps.GradeHandler.Register(authenticated("/grades"))
	}
	if deps.FeeHandler != nil {
		deps.FeeHandler.Register(authenticated("/fees"))
	}
	if deps.AnnouncementHandler != nil {
		deps.AnnouncementHandler.Register(authenticated("/announcements"))
	}
	if deps.TimetableHandler != nil {
		deps.TimetableHandler.Register(authenticated("/timetable"))
	}
	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activity", middleware.RequireRole(models.RoleAdmin)))
	}
}
