package services

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/store"
	"github.com/google/uuid"
)

type ContactService struct {
	store   store.Store
	metrics *metrics.Metrics
}

func NewContactService(st store.Store, m *metrics.Metrics) *ContactService {
	return &ContactService{store: st, metrics: m}
}

// AddContact stores a private address-book entry for ownerID. The same
// number may be added any number of times.
func (s *ContactService) AddContact(ctx context.Context, ownerID uuid.UUID, req *dto.AddContactRequest) (*models.Contact, error) {
	name := strings.TrimSpace(req.Name)
	number := strings.TrimSpace(req.Number)
	if name == "" || number == "" {
		field := "name"
		if name != "" {
			field = "number"
		}
		return nil, required(field, "Name and number are required for a contact.")
	}

	contact := &models.Contact{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    name,
		Number:  number,
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		contact.Email = &email
	}

	if err := s.store.CreateContact(ctx, contact); err != nil {
		return nil, resolutionError("create contact", err)
	}
	s.metrics.IncrementWrite("contact")
	return contact, nil
}
