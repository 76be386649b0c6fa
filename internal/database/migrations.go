package database

import (
	"github.com/andamanescapes/travel-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Activity{},
		&models.HotelBooking{},
		&models.ActivityBooking{},
		&models.Blog{},
		&models.BlogBook{},
	)
	if err != nil {
		return err
	}

	// Update users table
	if db.Migrator().HasTable(&models.User{}) {
		columns := []string{
			"ADD COLUMN IF NOT EXISTS phone text DEFAULT ''",
			"ADD COLUMN IF NOT EXISTS role text DEFAULT 'user'",
		}

		for _, column := range columns {
			if err := db.Exec("ALTER TABLE users " + column).Error; err != nil {
				return err
			}
		}

		// Update constraint
		db.Exec(`ALTER TABLE users DROP CONSTRAINT IF EXISTS users_role_check`)
		db.Exec(`ALTER TABLE users ADD CONSTRAINT users_role_check CHECK (role IN ('user', 'admin'))`)
	}

	// Booking status constraints keep the lifecycle values in sync with the API
	for _, table := range []string{"hotel_bookings", "activity_bookings"} {
		db.Exec(`ALTER TABLE ` + table + ` DROP CONSTRAINT IF EXISTS ` + table + `_status_check`)
		db.Exec(bookingStatusConstraint(table))
	}

	return nil
}

// bookingStatusConstraint builds the CHECK constraint keeping a booking
// table's status column within the lifecycle values.
func bookingStatusConstraint(table string) string {
	return `ALTER TABLE ` + table + ` ADD CONSTRAINT ` + table + `_status_check CHECK (status IN ('pending', 'confirmed', 'cancelled', 'completed'))`
}
