package db

import (
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mohammadpnp/user-ingest/internal/infrastructure/db/models"
)

// Connect opens the database, retrying while Postgres comes up, and creates
// the users table if it does not exist yet.
func Connect(databaseURL string) (*gorm.DB, error) {
	var database *gorm.DB

	err := retry.Do(
		func() error {
			var err error
			database, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
			return err
		},
		retry.Attempts(5),
		retry.Delay(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("migrate users table: %w", err)
	}

	return database, nil
}
