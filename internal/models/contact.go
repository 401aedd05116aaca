package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a private address-book row owned by one account. Different
// owners may hold entries for the same number; nothing is deduplicated.
type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_contacts_owner_number" json:"owner_id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Number    string    `gorm:"not null;size:32;index;index:idx_contacts_owner_number" json:"number"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	Owner     Account   `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Contact) TableName() string {
	return "contacts"
}
