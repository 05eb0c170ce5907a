// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository reads marketplace accounts.
type UserRepository interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindActiveStaff returns every active staff account.
	FindActiveStaff(ctx context.Context) ([]*entity.User, error)
}
