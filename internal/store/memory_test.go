package store

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) addAccount(name, number string) models.Account {
	a := models.Account{Name: name, Number: number, Password: "x"}
	s.Require().NoError(s.store.CreateAccount(s.ctx, &a))
	return a
}

func (s *MemoryStoreSuite) TestAccounts() {
	s.Run("finds account by number", func() {
		created := s.addAccount("Priya Patel", "8765432109")
		s.NotEqual(uuid.Nil, created.ID)

		found, err := s.store.FindAccountByNumber(s.ctx, "8765432109")
		s.Require().NoError(err)
		s.Equal(created.ID, found.ID)
		s.Equal("Priya Patel", found.Name)
	})

	s.Run("returns ErrNotFound for unknown number", func() {
		_, err := s.store.FindAccountByNumber(s.ctx, "0000000000")
		s.Require().ErrorIs(err, ErrNotFound)
	})

	s.Run("rejects duplicate number", func() {
		a := models.Account{Name: "Other", Number: "8765432109"}
		s.Require().ErrorIs(s.store.CreateAccount(s.ctx, &a), ErrDuplicate)
	})
}

func (s *MemoryStoreSuite) TestNameSearch() {
	s.addAccount("Amit", "1")
	s.addAccount("Samit", "2")
	s.addAccount("Amitabh", "3")
	s.addAccount("Priya", "4")

	s.Run("prefix matches are case-insensitive and keep insertion order", func() {
		got, err := s.store.AccountsByNamePrefix(s.ctx, "AMI")
		s.Require().NoError(err)
		s.Equal([]string{"Amit", "Amitabh"}, names(got))
	})

	s.Run("infix matches exclude prefix matches", func() {
		got, err := s.store.AccountsByNameInfix(s.ctx, "ami")
		s.Require().NoError(err)
		s.Equal([]string{"Samit"}, names(got))
	})

	s.Run("no match yields empty slice", func() {
		got, err := s.store.AccountsByNamePrefix(s.ctx, "zz")
		s.Require().NoError(err)
		s.Empty(got)
	})
}

func (s *MemoryStoreSuite) TestContacts() {
	owner := uuid.New()
	other := uuid.New()
	s.Require().NoError(s.store.CreateContact(s.ctx, &models.Contact{OwnerID: owner, Name: "Sonia", Number: "1111111111"}))
	s.Require().NoError(s.store.CreateContact(s.ctx, &models.Contact{OwnerID: other, Name: "Sonu", Number: "1111111111"}))
	s.Require().NoError(s.store.CreateContact(s.ctx, &models.Contact{OwnerID: owner, Name: "Sonia again", Number: "1111111111"}))

	s.Run("lists all owners' rows for a number", func() {
		got, err := s.store.ContactsByNumber(s.ctx, "1111111111")
		s.Require().NoError(err)
		s.Len(got, 3)
		s.Equal("Sonia", got[0].Name)
		s.Equal("Sonu", got[1].Name)
	})

	s.Run("HasContact is scoped to the owner", func() {
		ok, err := s.store.HasContact(s.ctx, owner, "1111111111")
		s.Require().NoError(err)
		s.True(ok)

		ok, err = s.store.HasContact(s.ctx, uuid.New(), "1111111111")
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *MemoryStoreSuite) TestSpamReports() {
	reporter := uuid.New()
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.store.CreateSpamReport(s.ctx, &models.SpamReport{ReporterID: reporter, ReportedNumber: "5555555555"}))
	}

	n, err := s.store.CountSpamReports(s.ctx, "5555555555")
	s.Require().NoError(err)
	s.Equal(int64(3), n)

	n, err = s.store.CountSpamReports(s.ctx, "4444444444")
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *MemoryStoreSuite) TestReset() {
	s.addAccount("Amit", "1")
	s.Require().NoError(s.store.CreateSpamReport(s.ctx, &models.SpamReport{ReportedNumber: "1"}))

	s.Require().NoError(s.store.Reset(s.ctx))

	_, err := s.store.FindAccountByNumber(s.ctx, "1")
	s.ErrorIs(err, ErrNotFound)
	n, err := s.store.CountSpamReports(s.ctx, "1")
	s.Require().NoError(err)
	s.Zero(n)
}

func names(accounts []models.Account) []string {
	out := make([]string, len(accounts))
	for i, a := range accounts {
		out[i] = a.Name
	}
	return out
}
