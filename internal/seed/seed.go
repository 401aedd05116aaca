// Package seed loads the demo dataset used for local runs.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/cache"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/store"
	"golang.org/x/crypto/bcrypt"
)

type Target interface {
	store.Store
	store.Resetter
}

type demoUser struct {
	Name, Number, Password, Email string
}

var demoUsers = []demoUser{
	{"Krishna Srivastava", "9876543210", "krishna", "krishna@demo.com"},
	{"Priya Patel", "8765432109", "priya", "priya@demo.com"},
	{"Amit Kumar", "7654321098", "amit", "amit@demo.com"},
	{"Banti Kumar", "4321098765", "banti", "banti@demo.com"},
	{"Akash Kumar", "4321876509", "akash", "akash@demo.com"},
	{"Subham Singh", "1098765432", "subham", "subham@demo.com"},
	{"Harsh Raj", "9876105432", "harsh", "harsh@demo.com"},
	{"Anubhaw Raj", "8321097654", "anubhaw", "anubhaw@demo.com"},
	{"Adishree", "2107654398", "adi", "adi@demo.com"},
}

// Run wipes existing rows and inserts the demo accounts, contacts and spam
// reports. Contacts and reports are owned by the first two accounts.
// Cached tallies are dropped afterwards; tallies may be nil.
func Run(ctx context.Context, t Target, tallies *cache.TallyCache) error {
	if err := t.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	slog.Info("cleared previous data")

	accounts := make([]models.Account, 0, len(demoUsers))
	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Number, err)
		}
		email := u.Email
		account := models.Account{Name: u.Name, Number: u.Number, Password: string(hash), Email: &email}
		if err := t.CreateAccount(ctx, &account); err != nil {
			return fmt.Errorf("create account %s: %w", u.Number, err)
		}
		accounts = append(accounts, account)
	}
	slog.Info("created demo accounts", "count", len(accounts))

	krishna, priya := accounts[0].ID, accounts[1].ID

	contacts := []models.Contact{
		{OwnerID: krishna, Name: "Sonia", Number: "1111111111"},
		{OwnerID: priya, Name: "Vikram", Number: "2222222222"},
	}
	for i := range contacts {
		if err := t.CreateContact(ctx, &contacts[i]); err != nil {
			return fmt.Errorf("create contact: %w", err)
		}
	}
	slog.Info("created demo contacts", "count", len(contacts))

	reports := []models.SpamReport{
		{ReporterID: krishna, ReportedNumber: "5555555555"},
		{ReporterID: priya, ReportedNumber: "5555555555"},
	}
	for i := range reports {
		if err := t.CreateSpamReport(ctx, &reports[i]); err != nil {
			return fmt.Errorf("create spam report: %w", err)
		}
	}
	slog.Info("added demo spam reports", "count", len(reports))

	flushed, err := tallies.Flush(ctx)
	if err != nil {
		return fmt.Errorf("flush cached tallies: %w", err)
	}
	if flushed > 0 {
		slog.Info("dropped cached spam tallies", "count", flushed)
	}
	return nil
}
