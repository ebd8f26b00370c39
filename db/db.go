package db

import (
	"github.com/aditbhattarai/Adit-ko-website/models"
	"github.com/aditbhattarai/Adit-ko-website/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Store owns the embedded SQLite database. It is constructed once in main
// and handed to the handlers, so tests can run against isolated instances.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite file at path and ensures the schema exists.
// Migration is idempotent, so calling this on every process start is safe.
func Open(path string) (*Store, error) {
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&models.Contact{}, &models.Visit{}); err != nil {
		return nil, err
	}

	return &Store{db: gormDB}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InsertContact appends one submission. The store assigns the id and the
// creation timestamp; ids are autoincremented and never reused.
func (s *Store) InsertContact(contact *models.Contact) error {
	return s.db.Create(contact).Error
}

// ListContacts returns every stored submission, newest first.
func (s *Store) ListContacts() ([]models.Contact, error) {
	contacts := []models.Contact{}
	result := s.db.Order("created_at DESC, id DESC").Find(&contacts)
	return contacts, result.Error
}

// GetContact returns the submission with the given id, or
// gorm.ErrRecordNotFound when no such row exists.
func (s *Store) GetContact(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact removes the submission with the given id. The boolean
// reports whether a row was actually removed; deleting an absent id is
// not an error.
func (s *Store) DeleteContact(id uint) (bool, error) {
	result := s.db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// InsertVisit appends one page-view record.
func (s *Store) InsertVisit(visit *models.Visit) error {
	return s.db.Create(visit).Error
}

// CountVisits returns the total number of tracked page views.
func (s *Store) CountVisits() (int64, error) {
	var count int64
	result := s.db.Model(&models.Visit{}).Count(&count)
	return count, result.Error
}

// CountUniqueVisitors returns the number of distinct client addresses seen.
func (s *Store) CountUniqueVisitors() (int64, error) {
	var count int64
	result := s.db.Model(&models.Visit{}).Distinct("ip_address").Count(&count)
	return count, result.Error
}

// CountContacts returns the total number of stored submissions.
func (s *Store) CountContacts() (int64, error) {
	var count int64
	result := s.db.Model(&models.Contact{}).Count(&count)
	return count, result.Error
}

// RecentVisits returns at most limit visits, newest first.
func (s *Store) RecentVisits(limit int) ([]models.Visit, error) {
	visits := []models.Visit{}
	result := s.db.Order("visited_at DESC, id DESC").Limit(limit).Find(&visits)
	return visits, result.Error
}
