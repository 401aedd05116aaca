package store

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore implements Store on PostgreSQL. Name matching uses ILIKE with
// LIKE metacharacters in the query escaped.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (s *GormStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormStore) FindAccountByNumber(ctx context.Context, number string) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("number = ?", number).Take(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (s *GormStore) AccountsByNamePrefix(ctx context.Context, query string) ([]models.Account, error) {
	var accounts []models.Account
	err := s.db.WithContext(ctx).
		Where("name ILIKE ?", escapeLike(query)+"%").
		Order("created_at ASC, id ASC").
		Find(&accounts).Error
	return accounts, err
}

func (s *GormStore) AccountsByNameInfix(ctx context.Context, query string) ([]models.Account, error) {
	escaped := escapeLike(query)
	var accounts []models.Account
	err := s.db.WithContext(ctx).
		Where("name ILIKE ? AND name NOT ILIKE ?", "%"+escaped+"%", escaped+"%").
		Order("created_at ASC, id ASC").
		Find(&accounts).Error
	return accounts, err
}

func (s *GormStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Omit("Owner").Create(contact).Error
}

func (s *GormStore) ContactsByNumber(ctx context.Context, number string) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.WithContext(ctx).
		Where("number = ?", number).
		Order("created_at ASC, id ASC").
		Find(&contacts).Error
	return contacts, err
}

func (s *GormStore) HasContact(ctx context.Context, ownerID uuid.UUID, number string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("owner_id = ? AND number = ?", ownerID, number).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateSpamReport(ctx context.Context, report *models.SpamReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Omit("Reporter").Create(report).Error
}

func (s *GormStore) CountSpamReports(ctx context.Context, number string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.SpamReport{}).
		Where("reported_number = ?", number).
		Count(&count).Error
	return count, err
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Reset deletes spam reports, contacts and accounts in dependency order.
func (s *GormStore) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.SpamReport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Contact{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Account{}).Error
	})
}
