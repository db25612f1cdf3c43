package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// PasswordHasher turns plaintext passwords into storable hashes and checks them.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt PasswordHasher. Out-of-range costs fall back to the default.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return bcryptHasher{cost: cost}
}

func (h bcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	return string(hash), err
}

func (h bcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// AuthService verifies credentials.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.Principal, error)
}

type authService struct {
	users     repository.UserRepository
	hasher    PasswordHasher
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthService constructs the authentication service.
func NewAuthService(users repository.UserRepository, hasher PasswordHasher, validator *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		hasher:    hasher,
		validator: validator,
		logger:    logger.With().Str("component", "auth_service").Logger(),
	}
}

// Login looks the user up by exact username and checks the password hash.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.Principal, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.Principal{}, NewValidationError("Username and password required")
	}

	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if repository.IsNotFound(err) {
			s.logger.Info().Str("username", req.Username).Msg("login rejected: unknown user")
			return dto.Principal{}, ErrInvalidCredentials
		}
		return dto.Principal{}, err
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		s.logger.Info().Uint("user_id", user.ID).Msg("login rejected: password mismatch")
		return dto.Principal{}, ErrInvalidCredentials
	}

	return dto.NewPrincipal(user), nil
}
