package store

import (
	"context"
	"errors"
	"fmt"
	"fmbot/internal/core/domain"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type binding struct {
	ChatUsername     string `gorm:"primaryKey"`
	ExternalUsername string `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SQLite keeps bindings in an embedded SQLite database and upserts them atomically.
type SQLite struct {
	db    *gorm.DB
	mutex sync.Mutex
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&binding{}); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, chatUsername string) (string, error) {
	var b binding

	err := s.db.WithContext(ctx).First(&b, "chat_username = ?", chatUsername).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domain.ErrNotBound
	}
	if err != nil {
		return "", fmt.Errorf("error loading binding: %w", err)
	}

	return b.ExternalUsername, nil
}

func (s *SQLite) Set(ctx context.Context, chatUsername, externalUsername string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	b := binding{ChatUsername: chatUsername, ExternalUsername: externalUsername}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_username"}},
		DoUpdates: clause.AssignmentColumns([]string{"external_username", "updated_at"}),
	}).Create(&b).Error
	if err != nil {
		return fmt.Errorf("error saving binding: %w", err)
	}

	return nil
}

func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
