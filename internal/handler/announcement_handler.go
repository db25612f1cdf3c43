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

// AnnouncementHandler exposes the announcement feed.
type AnnouncementHandler struct {
	service service.AnnouncementService
	logger  zerolog.Logger
}

// NewAnnouncementHandler constructs the handler.
func NewAnnouncementHandler(service service.AnnouncementService, logger zerolog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
		logger:  logger.With().Str("component", "announcement_handler").Logger(),
	}
}

// Register attaches announcement routes.
func (h *AnnouncementHandler) Register(router fiber.Router) {
	staff := middleware.RequireRole(models.RoleTeacher)

	router.Get("", h.list)
	router.Post("", staff, h.create)
	router.Delete("/:id", staff, h.delete)
}

func (h *AnnouncementHandler) list(c *fiber.Ctx) error {
	items, err := h.service.ListFor(withRequestContext(c), principalFromContext(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list announcements")
	}
	return utils.SendJSON(c, fiber.StatusOK, items)
}

func (h *AnnouncementHandler) create(c *fiber.Ctx) error {
	var payload dto.AnnouncementCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	if err := h.service.Create(withRequestContext(c), payload, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to publish announcement")
	}
	return utils.SendSuccess(c)
}

func (h *AnnouncementHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to delete announcement")
	}
	return utils.SendSuccess(c)
}
