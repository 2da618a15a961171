package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shawalli/contact-card/models"
)

// PostgresStore implements ContactStore on the Heroku Postgres database that
// Heroku Connect writes into.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.WithContext(ctx).Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *PostgresStore) BySFID(ctx context.Context, sfid string) (*models.Contact, error) {
	var contact models.Contact
	err := s.db.WithContext(ctx).Where("sfid = ?", sfid).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup contact %q: %w", sfid, err)
	}
	return &contact, nil
}

func (s *PostgresStore) Update(ctx context.Context, c *models.Contact) error {
	// Restrict the write to the five editable columns; id and sfid belong
	// to Postgres and Salesforce respectively.
	err := s.db.WithContext(ctx).Model(&models.Contact{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"firstname": c.FirstName,
			"lastname":  c.LastName,
			"title":     c.Title,
			"email":     c.Email,
			"phone":     c.Phone,
		}).Error
	if err != nil {
		return fmt.Errorf("update contact %q: %w", c.SFID, err)
	}
	return nil
}

func (s *PostgresStore) SchemaExists(ctx context.Context) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Raw("SELECT count(*) FROM information_schema.schemata WHERE schema_name = ?", SchemaName).
		Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("probe schema catalog: %w", err)
	}
	return count > 0, nil
}
