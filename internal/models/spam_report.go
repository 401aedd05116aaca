package models

import (
	"time"

	"github.com/google/uuid"
)

// SpamReport is one account's assertion that a number is abusive.
// ReportedNumber is matched by value; the target need not be registered.
type SpamReport struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportedNumber string    `gorm:"not null;size:32;index" json:"reported_number"`
	ReporterID     uuid.UUID `gorm:"type:uuid;not null;index" json:"reporter_id"`
	CreatedAt      time.Time `json:"created_at"`
	Reporter       Account   `gorm:"foreignKey:ReporterID" json:"-"`
}
