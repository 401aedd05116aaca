// Package store is the persistence boundary for accounts, contacts and spam
// reports. Implementations must return ErrNotFound for missing point lookups
// and ErrDuplicate when a unique key is violated.
package store

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type Store interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	FindAccountByNumber(ctx context.Context, number string) (*models.Account, error)

	// AccountsByNamePrefix returns accounts whose name starts with query,
	// case-insensitively, in store order.
	AccountsByNamePrefix(ctx context.Context, query string) ([]models.Account, error)
	// AccountsByNameInfix returns accounts whose name contains query but does
	// not start with it, case-insensitively, in store order.
	AccountsByNameInfix(ctx context.Context, query string) ([]models.Account, error)

	CreateContact(ctx context.Context, contact *models.Contact) error
	ContactsByNumber(ctx context.Context, number string) ([]models.Contact, error)
	HasContact(ctx context.Context, ownerID uuid.UUID, number string) (bool, error)

	CreateSpamReport(ctx context.Context, report *models.SpamReport) error
	CountSpamReports(ctx context.Context, number string) (int64, error)

	Ping(ctx context.Context) error
}

// Resetter wipes every row the service owns. Only the seed command uses it.
type Resetter interface {
	Reset(ctx context.Context) error
}
