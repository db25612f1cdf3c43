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

// StudentHandler wires student endpoints.
type StudentHandler struct {
	service service.StudentService
	logger  zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches student routes to an authenticated router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", middleware.RequireRole(models.RoleAdmin), h.create)
	router.Put("/:id", middleware.RequireRole(models.RoleTeacher), h.update)
	router.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.delete)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	classID, err := parseQueryUint(c, "class_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	students, err := h.service.List(withRequestContext(c), dto.StudentListRequest{
		Search:  strings.TrimSpace(c.Query("search")),
		ClassID: classID,
	})
	if err != nil {
		return respondError(c, h.logger, err, "failed to list students")
	}

	return utils.SendJSON(c, fiber.StatusOK, students)
}

func (h *StudentHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		return respondError(c, h.logger, err, "failed to fetch student")
	}

	return utils.SendJSON(c, fiber.StatusOK, student)
}

func (h *StudentHandler) create(c *fiber.Ctx) error {
	var payload dto.StudentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	if err := h.service.Create(withRequestContext(c), payload, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to create student")
	}

	return utils.SendSuccess(c)
}

func (h *StudentHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.StudentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	if err := h.service.Update(withRequestContext(c), id, payload, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to update student")
	}

	return utils.SendSuccess(c)
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to delete student")
	}

	return utils.SendSuccess(c)
}
