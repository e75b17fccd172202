package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type record struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"not null"`
}

func (record) TableName() string {
	return "kv_records"
}

// SQLiteStore persists records in a local sqlite file, one row per key.
type SQLiteStore struct {
	db *gorm.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("kvstore: migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec record
	if err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	rec := record{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rec).Error
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&record{}, "key = ?", key).Error
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
