package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/andamanescapes/travel-backend/internal/services"
	"github.com/andamanescapes/travel-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActivityBookingInput struct {
	ActivityID      uint   `json:"activityId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Participants    int    `json:"participants" binding:"required,min=1,max=20"`
	SpecialRequests string `json:"specialRequests" binding:"max=500"`
}

// parseBookingDate accepts a plain date or a full RFC3339 timestamp.
func parseBookingDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// beforeToday compares calendar dates so a booking for today is accepted
// until local midnight regardless of the timestamp's zone.
func beforeToday(d time.Time) bool {
	dy, dm, dd := d.Date()
	ny, nm, nd := time.Now().Date()
	booked := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return booked.Before(today)
}

// CreateActivityBooking books an activity slot for the caller.
func CreateActivityBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input ActivityBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		date, err := parseBookingDate(input.Date)
		if err != nil {
			utils.JSONError(c, 400, "Invalid date: expected YYYY-MM-DD")
			return
		}
		if beforeToday(date) {
			utils.JSONError(c, 400, "Date cannot be in the past")
			return
		}

		var activity models.Activity
		if err := db.First(&activity, input.ActivityID).Error; err != nil {
			utils.JSONError(c, 404, "Activity not found")
			return
		}

		if activity.Availability != string(models.ActivityAvailable) {
			utils.JSONError(c, 409, "Activity is currently unavailable")
			return
		}

		if input.Participants < activity.MinParticipants || input.Participants > activity.MaxParticipants {
			utils.JSONError(c, 400, fmt.Sprintf("Participants must be between %d and %d for this activity",
				activity.MinParticipants, activity.MaxParticipants))
			return
		}

		booking := models.ActivityBooking{
			UserID:          userId,
			ActivityID:      activity.ID,
			Reference:       utils.GenerateBookingReference(utils.ActivityBookingPrefix),
			Status:          models.BookingStatusPending,
			PaymentStatus:   models.PaymentStatusUnpaid,
			ActivityDate:    date,
			Participants:    input.Participants,
			TotalAmount:     activity.Price * float64(input.Participants),
			SpecialRequests: input.SpecialRequests,
		}

		if err := db.Create(&booking).Error; err != nil {
			utils.JSONError(c, 500, "Failed to create booking")
			return
		}

		booking.Activity = activity

		hub.SendBookingEvent(userId, "booking_created", services.BookingEvent{
			BookingID:   booking.ID,
			BookingType: "activity",
			Reference:   booking.Reference,
			Status:      string(booking.Status),
		})

		go notifyBookingCreated(db, userId, booking.Reference, activity.Name)

		utils.JSONSuccess(c, 201, booking)
	}
}

// GetMyActivityBookings lists the caller's activity bookings, optionally
// filtered by status.
func GetMyActivityBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		q := db.Where("user_id = ?", userId).Preload("Activity").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}

		var bookings []models.ActivityBooking
		if err := q.Find(&bookings).Error; err != nil {
			utils.JSONError(c, 500, "Failed to fetch bookings")
			return
		}

		utils.JSONSuccess(c, 200, bookings)
	}
}

// CancelActivityBooking cancels one of the caller's bookings. Only pending
// and confirmed bookings can be cancelled.
func CancelActivityBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var booking models.ActivityBooking
		if err := db.Preload("Activity").First(&booking, c.Param("id")).Error; err != nil {
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
			BookingType: "activity",
			Reference:   booking.Reference,
			Status:      string(booking.Status),
		})

		go notifyBookingCancelled(db, userId, booking.Reference)

		utils.JSONSuccess(c, 200, booking)
	}
}

// notifyBookingCreated sends the confirmation email. Runs off the request
// path; failures are logged only.
func notifyBookingCreated(db *gorm.DB, userId uint, reference, itemName string) {
	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		log.Printf("Failed to load user %d for booking email: %v", userId, err)
		return
	}
	if err := utils.SendBookingConfirmationEmail(user.Email, user.FullName, reference, itemName); err != nil {
		log.Printf("Failed to send booking confirmation for %s: %v", reference, err)
	}
}

func notifyBookingCancelled(db *gorm.DB, userId uint, reference string) {
	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		log.Printf("Failed to load user %d for booking email: %v", userId, err)
		return
	}
	if err := utils.SendBookingCancelledEmail(user.Email, user.FullName, reference); err != nil {
		log.Printf("Failed to send cancellation email for %s: %v", reference, err)
	}
}
