// Package mock provides test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/subtracker/backend/internal/integration/persistence/model"
)

// Db wraps an in-memory SQLite database for integration tests.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens a fresh in-memory database with the full schema migrated.
// Every scenario gets its own database so no state leaks between them.
func NewDb() (*Db, error) {
	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbConn.AutoMigrate(
		&model.SubscriptionModel{},
		&model.CategoryModel{},
		&model.SettingModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Db{DbConn: dbConn}, nil
}

// Close closes the underlying connection.
func (d *Db) Close() error {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
