package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trendwatch-backend/pkg/config"
)

// NewPostgresConnection opens the GORM Postgres connection
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
}
