package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// CanCancel reports whether a booking in this status may still be cancelled.
// Only pending and confirmed bookings can transition to cancelled.
func (s BookingStatus) CanCancel() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type HotelBooking struct {
	gorm.Model
	UserID          uint          `gorm:"column:user_id;not null;index" json:"userId"`
	User            User          `json:"user,omitempty"`
	HotelID         uint          `gorm:"column:hotel_id;not null;index" json:"hotelId"`
	Hotel           Hotel         `json:"hotel,omitempty"`
	Reference       string        `gorm:"column:reference;unique;not null" json:"reference"`
	Status          BookingStatus `gorm:"column:status;not null;default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"column:payment_status;not null;default:'unpaid'" json:"paymentStatus"`
	CheckIn         time.Time     `gorm:"column:check_in;not null" json:"checkIn"`
	CheckOut        time.Time     `gorm:"column:check_out;not null" json:"checkOut"`
	Guests          int           `gorm:"column:guests;not null" json:"guests"`
	Rooms           int           `gorm:"column:rooms;not null;default:1" json:"rooms"`
	TotalAmount     float64       `gorm:"column:total_amount;not null" json:"totalAmount"`
	SpecialRequests string        `gorm:"column:special_requests;size:500" json:"specialRequests,omitempty"`
	CancelledAt     *time.Time    `gorm:"column:cancelled_at" json:"cancelledAt,omitempty"`
}

func (HotelBooking) TableName() string {
	return "hotel_bookings"
}

// Nights returns the stay length in whole nights.
func (b *HotelBooking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

type ActivityBooking struct {
	gorm.Model
	UserID          uint          `gorm:"column:user_id;not null;index" json:"userId"`
	User            User          `json:"user,omitempty"`
	ActivityID      uint          `gorm:"column:activity_id;not null;index" json:"activityId"`
	Activity        Activity      `json:"activity,omitempty"`
	Reference       string        `gorm:"column:reference;unique;not null" json:"reference"`
	Status          BookingStatus `gorm:"column:status;not null;default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"column:payment_status;not null;default:'unpaid'" json:"paymentStatus"`
	ActivityDate    time.Time     `gorm:"column:activity_date;not null" json:"activityDate"`
	Participants    int           `gorm:"column:participants;not null" json:"participants"`
	TotalAmount     float64       `gorm:"column:total_amount;not null" json:"totalAmount"`
	SpecialRequests string        `gorm:"column:special_requests;size:500" json:"specialRequests,omitempty"`
	CancelledAt     *time.Time    `gorm:"column:cancelled_at" json:"cancelledAt,omitempty"`
}

func (ActivityBooking) TableName() string {
	return "activity_bookings"
}
