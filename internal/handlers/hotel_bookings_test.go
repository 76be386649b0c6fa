package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andamanescapes/travel-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func TestHotelBookingGuestBounds(t *testing.T) {
	cases := []struct {
		guests int
		valid  bool
	}{
		{0, false},
		{1, true},
		{20, true},
		{21, false},
	}

	for _, tc := range cases {
		input := HotelBookingInput{
			HotelID:  1,
			CheckIn:  "2030-01-15",
			CheckOut: "2030-01-18",
			Guests:   tc.guests,
		}
		err := binding.Validator.ValidateStruct(&input)
		if tc.valid && err != nil {
			t.Errorf("guests=%d should be accepted: %v", tc.guests, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("guests=%d should be rejected", tc.guests)
		}
	}
}

func TestCreateHotelBookingRejectsMalformedInput(t *testing.T) {
	hub := services.NewHub()
	r := gin.New()
	r.POST("/bookings", CreateHotelBooking(nil, hub))

	cases := []string{
		`{"hotelId":1,"checkOut":"2030-01-18","guests":2}`,                         // missing checkIn
		`{"hotelId":1,"checkIn":"2030-01-15","guests":2}`,                          // missing checkOut
		`{"hotelId":1,"checkIn":"2030-01-18","checkOut":"2030-01-15","guests":2}`,  // checkOut before checkIn
		`{"hotelId":1,"checkIn":"2030-01-15","checkOut":"2030-01-15","guests":2}`,  // zero nights
		`{"hotelId":1,"checkIn":"2001-01-15","checkOut":"2001-01-18","guests":2}`,  // past stay
		`{"hotelId":1,"checkIn":"2030-01-15","checkOut":"2030-01-18","guests":21}`, // too many guests
	}

	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != 400 {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}
