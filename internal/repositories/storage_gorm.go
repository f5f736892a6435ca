package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRecord is one row of the key-value state table backing GORMStorage.
type StateRecord struct {
	Key   string `gorm:"primaryKey;column:state_key;type:varchar(64)"`
	Value []byte `gorm:"column:state_value"`
}

// TableName overrides the GORM default pluralization.
func (StateRecord) TableName() string {
	return "session_state"
}

// GORMStorage persists session state in a relational key-value table. It
// works against SQLite and PostgreSQL.
type GORMStorage struct {
	db *gorm.DB
}

// NewGORMStorage migrates the state table and returns a GORMStorage.
func NewGORMStorage(db *gorm.DB) (*GORMStorage, error) {
	if err := db.AutoMigrate(&StateRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session state table: %w", err)
	}
	return &GORMStorage{db: db}, nil
}

// Get returns the value stored under key, if any.
func (s *GORMStorage) Get(key string) ([]byte, bool, error) {
	var record StateRecord
	err := s.db.First(&record, "state_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state key %s: %w", key, err)
	}
	return record.Value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *GORMStorage) Set(key string, value []byte) error {
	record := StateRecord{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"state_value"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write state key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Absent keys are not an error.
func (s *GORMStorage) Delete(key string) error {
	if err := s.db.Delete(&StateRecord{}, "state_key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete state key %s: %w", key, err)
	}
	return nil
}
