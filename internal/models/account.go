package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity. Number is the natural lookup key and
// never changes after registration.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255;index" json:"name"`
	Number    string    `gorm:"not null;size:32;uniqueIndex" json:"number"`
	Password  string    `gorm:"not null" json:"-"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasEmail reports whether the account carries a usable email address.
func (a *Account) HasEmail() bool {
	return a.Email != nil && *a.Email != ""
}
