package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/google/uuid"
)

// MemoryStore keeps rows in insertion order. It backs tests and local runs
// without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts []models.Account
	contacts []models.Contact
	reports  []models.SpamReport
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateAccount(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.Number == account.Number {
			return ErrDuplicate
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	s.accounts = append(s.accounts, *account)
	return nil
}

func (s *MemoryStore) FindAccountByNumber(_ context.Context, number string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].Number == number {
			account := s.accounts[i]
			return &account, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) AccountsByNamePrefix(_ context.Context, query string) ([]models.Account, error) {
	q := strings.ToLower(query)
	return s.filterAccounts(func(name string) bool {
		return strings.HasPrefix(name, q)
	}), nil
}

func (s *MemoryStore) AccountsByNameInfix(_ context.Context, query string) ([]models.Account, error) {
	q := strings.ToLower(query)
	return s.filterAccounts(func(name string) bool {
		return strings.Contains(name, q) && !strings.HasPrefix(name, q)
	}), nil
}

func (s *MemoryStore) filterAccounts(match func(lowerName string) bool) []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Account
	for _, a := range s.accounts {
		if match(strings.ToLower(a.Name)) {
			out = append(out, a)
		}
	}
	return out
}

func (s *MemoryStore) CreateContact(_ context.Context, contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	contact.CreatedAt = time.Now()
	s.contacts = append(s.contacts, *contact)
	return nil
}

func (s *MemoryStore) ContactsByNumber(_ context.Context, number string) ([]models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Contact
	for _, c := range s.contacts {
		if c.Number == number {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryStore) HasContact(_ context.Context, ownerID uuid.UUID, number string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.contacts {
		if c.OwnerID == ownerID && c.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) CreateSpamReport(_ context.Context, report *models.SpamReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.CreatedAt = time.Now()
	s.reports = append(s.reports, *report)
	return nil
}

func (s *MemoryStore) CountSpamReports(_ context.Context, number string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, r := range s.reports {
		if r.ReportedNumber == number {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = nil
	s.contacts = nil
	s.reports = nil
	return nil
}
