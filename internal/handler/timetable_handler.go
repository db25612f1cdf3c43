package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// TimetableHandler wires weekly schedule endpoints.
type TimetableHandler struct {
	service service.TimetableService
	logger  zerolog.Logger
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(service service.TimetableService, logger zerolog.Logger) *TimetableHandler {
	return &TimetableHandler{
		service: service,
		logger:  logger.With().Str("component", "timetable_handler").Logger(),
	}
}

// Register attaches timetable routes.
func (h *TimetableHandler) Register(router fiber.Router) {
	admin := middleware.RequireRole(models.RoleAdmin)

	router.Get("", h.list)
	router.Post("", admin, h.create)
	router.Delete("/:id", admin, h.delete)
}

func (h *TimetableHandler) list(c *fiber.Ctx) error {
	classID, err := parseQueryUint(c, "class_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	entries, err := h.service.List(withRequestContext(c), classID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to list timetable")
	}
	return utils.SendJSON(c, fiber.StatusOK, entries)
}

func (h *TimetableHandler) create(c *fiber.Ctx) error {
	var payload dto.TimetableCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	if err := h.service.Create(withRequestContext(c), payload, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to create timetable entry")
	}
	return utils.SendSuccess(c)
}

func (h *TimetableHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to delete timetable entry")
	}
	return utils.SendSuccess(c)
}
