package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bardabar-be-svc/internal/config"
	"bardabar-be-svc/internal/models"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a connection for the configured driver
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.GetDSN())
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate creates or updates the schema for all entities
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Event{},
		&models.News{},
		&models.Staff{},
		&models.ContactRequest{},
		&models.AboutContent{},
		&models.AdminCredentials{},
		&models.User{},
	)
}

// Close closes the underlying sql connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
