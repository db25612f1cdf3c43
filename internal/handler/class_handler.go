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

// ClassHandler wires class endpoints.
type ClassHandler struct {
	service service.ClassService
	logger  zerolog.Logger
}

// NewClassHandler constructs the handler.
func NewClassHandler(service service.ClassService, logger zerolog.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		logger:  logger.With().Str("component", "class_handler").Logger(),
	}
}

// Register attaches class routes.
func (h *ClassHandler) Register(router fiber.Router) {
	admin := middleware.RequireRole(models.RoleAdmin)

	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", admin, h.create)
	router.Put("/:id", admin, h.update)
	router.Delete("/:id", admin, h.delete)
}

func (h *ClassHandler) list(c *fiber.Ctx) error {
	classes, err := h.service.List(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list classes")
	}
	return utils.SendJSON(c, fiber.StatusOK, classes)
}

func (h *ClassHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	class, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		return respondError(c, h.logger, err, "failed to fetch class")
	}
	return utils.SendJSON(c, fiber.StatusOK, class)
}

func (h *ClassHandler) create(c *fiber.Ctx) error {
	var payload dto.ClassCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	if err := h.service.Create(withRequestContext(c), payload, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to create class")
	}
	return utils.SendSuccess(c)
}

func (h *ClassHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ClassUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	if err := h.service.Update(withRequestContext(c), id, payload, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to update class")
	}
	return utils.SendSuccess(c)
}

func (h *ClassHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to delete class")
	}
	return utils.SendSuccess(c)
}
