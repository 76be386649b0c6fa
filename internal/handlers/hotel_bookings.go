package handlers

import (
	"fmt"
	"time"

	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/andamanescapes/travel-backend/internal/services"
	"github.com/andamanescapes/travel-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HotelBookingInput struct {
	HotelID         uint   `json:"hotelId" binding:"required"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	Guests          int    `json:"guests" binding:"required,min=1,max=20"`
	Rooms           int    `json:"rooms" binding:"omitempty,min=1,max=10"`
	SpecialRequests string `json:"specialRequests" binding:"max=500"`
}

// CreateHotelBooking books a hotel stay for the caller.
func CreateHotelBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input HotelBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		checkIn, err := parseBookingDate(input.CheckIn)
		if err != nil {
			utils.JSONError(c, 400, "Invalid checkIn: expected YYYY-MM-DD")
			return
		}
		checkOut, err := parseBookingDate(input.CheckOut)
		if err != nil {
			utils.JSONError(c, 400, "Invalid checkOut: expected YYYY-MM-DD")
			return
		}
		if !checkOut.After(checkIn) {
			utils.JSONError(c, 400, "checkOut must be after checkIn")
			return
		}
		if beforeToday(checkIn) {
			utils.JSONError(c, 400, "checkIn cannot be in the past")
			return
		}

		var hotel models.Hotel
		if err := db.First(&hotel, input.HotelID).Error; err != nil {
			utils.JSONError(c, 404, "Hotel not found")
			return
		}

		rooms := input.Rooms
		if rooms == 0 {
			rooms = 1
		}
		nights := int(checkOut.Sub(checkIn).Hours() / 24)

		booking := models.HotelBooking{
			UserID:          userId,
			HotelID:         hotel.ID,
			Reference:       utils.GenerateBookingReference(utils.HotelBookingPrefix),
			Status:          models.BookingStatusPending,
			PaymentStatus:   models.PaymentStatusUnpaid,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Guests:          input.Guests,
			Rooms:           rooms,
			TotalAmount:     hotel.Price * float64(nights) * float64(rooms),
			SpecialRequests: input.SpecialRequests,
		}

		if err := db.Create(&booking).Error; err != nil {
			utils.JSONError(c, 500, "Failed to create booking")
			return
		}

		booking.Hotel = hotel

		hub.SendBookingEvent(userId, "booking_created", services.BookingEvent{
			BookingID:   booking.ID,
			BookingType: "hotel",
			Reference:   booking.Reference,
			Status:      string(booking.Status),
		})

		go notifyBookingCreated(db, userId, booking.Reference, hotel.Name)

		utils.JSONSuccess(c, 201, booking)
	}
}

// GetMyHotelBookings lists the caller's hotel bookings, optionally
// filtered by status.
func GetMyHotelBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		q := db.Where("user_id = ?", userId).Preload("Hotel").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}

		var bookings []models.HotelBooking
		if err := q.Find(&bookings).Error; err != nil {
			utils.JSONError(c, 500, "Failed to fetch bookings")
			return
		}

		utils.JSONSuccess(c, 200, bookings)
	}
}

// CancelHotelBooking cancels one of the caller's bookings. Only pending
// and confirmed bookings can be cancelled.
func CancelHotelBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var booking models.HotelBooking
		if err := db.Preload("Hotel").First(&booking, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Booking not found")
			return
		}

		if booking.UserID != userId {
			utils.JSONError(c, 403, "Unauthorized")
			return
		}

		if !booking.Status.CanCancel() {
			utils.JSONError(c, 409, fmt.Sprintf("Cannot cancel a %s booking", booking.Status))
			return
		}

		now := time.Now()
		booking.Status = models.BookingStatusCancelled
		booking.CancelledAt = &now

		if err := db.Save(&booking).Error; err != nil {
			utils.JSONError(c, 500, "Failed to cancel booking")
			return
		}

		hub.SendBookingEvent(userId, "booking_cancelled", services.BookingEvent{
			BookingID:   booking.ID,
			BookingType: "hotel",
			Reference:   booking.Reference,
			Status:      string(booking.Status),
		})

		go notifyBookingCancelled(db, userId, booking.Reference)

		utils.JSONSuccess(c, 200, booking)
	}
}

// DeleteHotelBooking hard-deletes a hotel booking. Legacy path kept for
// the old admin screens; owner or admin only.
func DeleteHotelBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")
		role := c.GetString("userRole")

		var booking models.HotelBooking
		if err := db.First(&booking, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Booking not found")
			return
		}

		if booking.UserID != userId && role != string(models.RoleAdmin) {
			utils.JSONError(c, 403, "Unauthorized")
			return
		}

		if err := db.Unscoped().Delete(&booking).Error; err != nil {
			utils.JSONError(c, 500, "Failed to delete booking")
			return
		}

		utils.JSONSuccess(c, 200, gin.H{"message": "Booking deleted"})
	}
}
