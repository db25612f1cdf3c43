package middleware

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
)

const (
	principalSessionKey = "principal"
	principalLocalsKey  = "principal"
)

// SessionConfig controls the session cookie and its backing store.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
	// Storage defaults to fiber's in-memory store when nil.
	Storage fiber.Storage
}

// Sessions binds the cookie session store to the request pipeline.
type Sessions struct {
	store      *session.Store
	cookieName string
	logger     zerolog.Logger
}

// NewSessions builds the session store described by cfg.
func NewSessions(cfg SessionConfig, logger zerolog.Logger) *Sessions {
	if cfg.CookieName == "" {
		cfg.CookieName = "school_session"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}

	store := session.New(session.Config{
		Expiration:     cfg.TTL,
		Storage:        cfg.Storage,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Secure,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})

	return &Sessions{
		store:      store,
		cookieName: cfg.CookieName,
		logger:     logger.With().Str("component", "session").Logger(),
	}
}

// Load resolves the principal for requests that carry a session cookie.
// Anonymous requests pass through untouched; the gates decide what they may reach.
func (s *Sessions) Load() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Cookies(s.cookieName) == "" {
			return c.Next()
		}

		sess, err := s.store.Get(c)
		if err != nil {
			s.logger.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("failed to load session")
			return c.Next()
		}

		raw, ok := sess.Get(principalSessionKey).(string)
		if !ok || raw == "" {
			return c.Next()
		}

		var principal dto.Principal
		if err := json.Unmarshal([]byte(raw), &principal); err != nil {
			s.logger.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("discarding malformed session")
			return c.Next()
		}

		SetPrincipal(c, principal)
		return c.Next()
	}
}

// Login starts a fresh session for principal, replacing any prior session id.
func (s *Sessions) Login(c *fiber.Ctx, principal dto.Principal) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("regenerate session: %w", err)
	}

	encoded, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("encode principal: %w", err)
	}
	sess.Set(principalSessionKey, string(encoded))

	if err := sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	SetPrincipal(c, principal)
	return nil
}

// Logout destroys the caller's session. It succeeds when there is none.
func (s *Sessions) Logout(c *fiber.Ctx) error {
	if c.Cookies(s.cookieName) == "" {
		return nil
	}

	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := sess.Destroy(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}

	c.Locals(principalLocalsKey, nil)
	return nil
}

// PrincipalFrom returns the authenticated principal bound to the request.
func PrincipalFrom(c *fiber.Ctx) (dto.Principal, bool) {
	principal, ok := c.Locals(principalLocalsKey).(dto.Principal)
	if !ok || principal.ID == 0 {
		return dto.Principal{}, false
	}
	return principal, true
}

// SetPrincipal binds principal to the request for the gates and handlers downstream.
func SetPrincipal(c *fiber.Ctx, principal dto.Principal) {
	c.Locals(principalLocalsKey, principal)
	c.Locals("user_id", principal.ID)
	c.Locals("user_role", string(principal.Role))
}
