package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/observability"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// AuthHandler manages login sessions.
type AuthHandler struct {
	service  service.AuthService
	sessions *middleware.Sessions
	logger   zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, sessions *middleware.Sessions, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		logger:   logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches auth routes. loginLimiter may be nil.
func (h *AuthHandler) Register(router fiber.Router, loginLimiter fiber.Handler) {
	if loginLimiter != nil {
		router.Post("/login", loginLimiter, h.login)
	} else {
		router.Post("/login", h.login)
	}
	router.Post("/logout", h.logout)
	router.Get("/me", h.me)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return invalidPayload(c)
	}

	principal, err := h.service.Login(withRequestContext(c), payload)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			// incomplete form, not an attempt
		case errors.Is(err, service.ErrInvalidCredentials):
			observability.LoginAttempts().WithLabelValues("invalid").Inc()
		default:
			observability.LoginAttempts().WithLabelValues("error").Inc()
		}
		return respondError(c, h.logger, err, "login failed")
	}

	if err := h.sessions.Login(c, principal); err != nil {
		observability.LoginAttempts().WithLabelValues("error").Inc()
		return respondError(c, h.logger, err, "failed to start session")
	}

	observability.LoginAttempts().WithLabelValues("success").Inc()
	requestLogger(h.logger, c).Info().Uint("user_id", principal.ID).Str("role", principal.Role.String()).Msg("user logged in")

	return utils.SendJSON(c, fiber.StatusOK, dto.LoginResponse{Success: true, User: principal})
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c); err != nil {
		return respondError(c, h.logger, err, "failed to destroy session")
	}
	return utils.SendSuccess(c)
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	return utils.SendJSON(c, fiber.StatusOK, principal)
}
