package database

import (
	"strings"
	"testing"

	"github.com/andamanescapes/travel-backend/internal/models"
)

func TestBookingStatusConstraintCoversLifecycle(t *testing.T) {
	statuses := []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
		models.BookingStatusCompleted,
	}

	for _, table := range []string{"hotel_bookings", "activity_bookings"} {
		sql := bookingStatusConstraint(table)
		if !strings.Contains(sql, table+"_status_check") {
			t.Errorf("constraint for %s missing its name: %s", table, sql)
		}
		for _, status := range statuses {
			if !strings.Contains(sql, "'"+string(status)+"'") {
				t.Errorf("constraint for %s missing status %q: %s", table, status, sql)
			}
		}
	}
}
