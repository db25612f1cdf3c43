package dto

import "github.com/noah-isme/school-admin-api/internal/models"

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Principal is the authenticated identity stored in the session.
type Principal struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Name     string      `json:"name"`
}

// NewPrincipal extracts the session identity from a user row.
func NewPrincipal(user models.User) Principal {
	return Principal{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Name:     user.Name,
	}
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Success bool      `json:"success"`
	User    Principal `json:"user"`
}
