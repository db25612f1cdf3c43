package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// AttendanceHandler wires attendance roster, marking and report endpoints.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches attendance routes.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("/report", h.report)
	router.Get("", h.roster)
	router.Post("", middleware.RequireRole(models.RoleTeacher), h.mark)
}

func (h *AttendanceHandler) roster(c *fiber.Ctx) error {
	classID, err := parseQueryUint(c, "class_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	req := dto.AttendanceRosterRequest{Date: strings.TrimSpace(c.Query("date"))}
	if classID != nil {
		req.ClassID = *classID
	}

	roster, err := h.service.Roster(withRequestContext(c), req)
	if err != nil {
		return respondError(c, h.logger, err, "failed to load attendance roster")
	}
	return utils.SendJSON(c, fiber.StatusOK, roster)
}

func (h *AttendanceHandler) mark(c *fiber.Ctx) error {
	var payload dto.AttendanceMarkRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "records array required")
	}

	count, err := h.service.Mark(withRequestContext(c), payload, principalFromContext(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to save attendance")
	}

	requestLogger(h.logger, c).Debug().Int("records", count).Msg("attendance saved")
	return utils.SendSuccess(c)
}

func (h *AttendanceHandler) report(c *fiber.Ctx) error {
	studentID, err := parseQueryUint(c, "student_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	classID, err := parseQueryUint(c, "class_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := h.service.Report(withRequestContext(c), dto.AttendanceReportRequest{
		StudentID: studentID,
		ClassID:   classID,
		Status:    strings.TrimSpace(c.Query("status")),
		From:      strings.TrimSpace(c.Query("from")),
		To:        strings.TrimSpace(c.Query("to")),
	})
	if err != nil {
		return respondError(c, h.logger, err, "failed to build attendance report")
	}
	return utils.SendJSON(c, fiber.StatusOK, rows)
}
