package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityAvailability string

const (
	ActivityAvailable   ActivityAvailability = "available"
	ActivityUnavailable ActivityAvailability = "unavailable"
)

type Activity struct {
	gorm.Model
	Name            string         `gorm:"column:name;not null" json:"name"`
	Destination     string         `gorm:"column:destination;not null" json:"destination"`
	Description     string         `gorm:"column:description;type:text" json:"description"`
	Duration        string         `gorm:"column:duration" json:"duration"` // e.g. "3 hours", "full day"
	Price           float64        `gorm:"column:price;not null" json:"price"`
	Category        string         `gorm:"column:category" json:"category"`
	Difficulty      string         `gorm:"column:difficulty" json:"difficulty"`
	MinParticipants int            `gorm:"column:min_participants;default:1" json:"minParticipants"`
	MaxParticipants int            `gorm:"column:max_participants;default:20" json:"maxParticipants"`
	MeetingPoint    string         `gorm:"column:meeting_point" json:"meetingPoint"`
	Availability    string         `gorm:"column:availability;not null;default:'available'" json:"availability"`
	Photos          datatypes.JSON `gorm:"column:photos" json:"photos,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}
