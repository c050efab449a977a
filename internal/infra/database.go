package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/umersanii/CableManagement-sub001/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// document tables. Records are written once and never updated (a correction
// is a new record), so the schema stays small: three record tables plus the
// polymorphic line-item table.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Invoice{},
		&model.ReturnInvoice{},
		&model.BalanceSnapshot{},
		&model.LineItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
