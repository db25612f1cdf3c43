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

// FeeHandler wires fee billing endpoints.
type FeeHandler struct {
	service service.FeeService
	logger  zerolog.Logger
}

// NewFeeHandler constructs the handler.
func NewFeeHandler(service service.FeeService, logger zerolog.Logger) *FeeHandler {
	return &FeeHandler{
		service: service,
		logger:  logger.With().Str("component", "fee_handler").Logger(),
	}
}

// Register attaches fee routes.
func (h *FeeHandler) Register(router fiber.Router) {
	admin := middleware.RequireRole(models.RoleAdmin)

	router.Get("", h.list)
	router.Post("", admin, h.create)
	router.Put("/:id/pay", admin, h.pay)
	router.Delete("/:id", admin, h.delete)
}

func (h *FeeHandler) list(c *fiber.Ctx) error {
	studentID, err := parseQueryUint(c, "student_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	fees, err := h.service.List(withRequestContext(c), dto.FeeListRequest{
		StudentID: studentID,
		Status:    strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		return respondError(c, h.logger, err, "failed to list fees")
	}
	return utils.SendJSON(c, fiber.StatusOK, fees)
}

func (h *FeeHandler) create(c *fiber.Ctx) error {
	var payload dto.FeeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	if err := h.service.Create(withRequestContext(c), payload, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to create fee")
	}
	return utils.SendSuccess(c)
}

func (h *FeeHandler) pay(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Pay(withRequestContext(c), id, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to mark fee paid")
	}
	return utils.SendSuccess(c)
}

func (h *FeeHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id, principalFromContext(c)); err != nil {
		return respondError(c, h.logger, err, "failed to delete fee")
	}
	return utils.SendSuccess(c)
}
