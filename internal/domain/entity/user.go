// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account on the marketplace. A single account may hold several roles.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Contact email, also sent to the payment gateway.
	Name      string    // Display name used in notification texts.
	Roles     Roles     // Roles granted to the account.
	IsStaff   bool      // Staff accounts receive operator notifications.
	IsActive  bool      // Inactive accounts are never notified.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the name, falling back to the email.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return u.Email
}
