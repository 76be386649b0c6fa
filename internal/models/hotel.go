package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model
	Name        string         `gorm:"column:name;not null" json:"name"`
	Location    string         `gorm:"column:location;not null" json:"location"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Price       float64        `gorm:"column:price;not null" json:"price"` // per night
	Rating      float64        `gorm:"column:rating;default:0" json:"rating"`
	Photos      datatypes.JSON `gorm:"column:photos" json:"photos,omitempty"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	RoomTypes   datatypes.JSON `gorm:"column:room_types" json:"roomTypes,omitempty"`
}

func (Hotel) TableName() string {
	return "hotels"
}
