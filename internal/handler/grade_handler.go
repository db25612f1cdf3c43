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

// GradeHandler wires grade endpoints. Teachers and admins may write.
type GradeHandler struct {
	service service.GradeService
	logger  zerolog.Logger
}

// NewGradeHandler constructs the handler.
func NewGradeHandler(service service.GradeService, logger zerolog.Logger) *GradeHandler {
	return &GradeHandler{
		service: service,
		logger:  logger.With().Str("component", "grade_handler").Logger(),
	}
}

// Register attaches grade routes.
func (h *GradeHandler) Register(router fiber.Router) {
	staff := middleware.RequireRole(models.RoleTeacher)

	router.Get("", h.list)
	router.Post("", staff, h.create)
	router.Put("/:id", staff, h.update)
	router.Delete("/:id", staff, h.delete)
}

func (h *GradeHandler) list(c *fiber.Ctx) error {
	studentID, err := parseQueryUint(c, "student_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	subjectID, err := parseQueryUint(c, "subject_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	grades, err := h.service.List(withRequestContext(c), dto.GradeListRequest{StudentID: studentID, SubjectID: subjectID})
	if err != nil {
		return respondError(c, h.logger, err, "failed to list grades")
	}
	return utils.SendJSON(c, fiber.StatusOK, grades)
}

func (h *GradeHandler) create(c *fiber.Ctx) error {
	var payload dto.GradeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	if err := h.service.Create(withRequestContext(c), payload, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to record grade")
	}
	return utils.SendSuccess(c)
}

func (h *GradeHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.GradeUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	if err := h.service.Update(withRequestContext(c), id, payload, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to update grade")
	}
	return utils.SendSuccess(c)
}

func (h *GradeHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to delete grade")
	}
	return utils.SendSuccess(c)
}
