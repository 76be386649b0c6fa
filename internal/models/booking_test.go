package models

import (
	"testing"
	"time"
)

func TestBookingStatusCanCancel(t *testing.T) {
	cases := map[BookingStatus]bool{
		BookingStatusPending:   true,
		BookingStatusConfirmed: true,
		BookingStatusCancelled: false,
		BookingStatusCompleted: false,
	}

	for status, want := range cases {
		if got := status.CanCancel(); got != want {
			t.Errorf("%s.CanCancel() = %v, want %v", status, got, want)
		}
	}
}

func TestHotelBookingNights(t *testing.T) {
	checkIn := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)
	booking := HotelBooking{
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 3),
	}

	if nights := booking.Nights(); nights != 3 {
		t.Errorf("expected 3 nights, got %d", nights)
	}
}
