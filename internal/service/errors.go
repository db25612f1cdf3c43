package service

import (
	"errors"
	"fmt"

	"github.com/noah-isme/school-admin-api/internal/repository"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// notFound wraps ErrNotFound with the entity name when err means no row matched.
func notFound(entity string, err error) error {
	if repository.IsNotFound(err) {
		return fmt.Errorf("%s %w", entity, ErrNotFound)
	}
	return err
}
