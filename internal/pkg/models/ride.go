package models

import (
	"time"

	"github.com/google/uuid"
)

// Date and time layouts used for ride departure fields
const (
	RideDateLayout = "2006-01-02"
	RideTimeLayout = "15:04"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusOpen      RideStatus = "open"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// Ride represents a driver-posted trip offer
type Ride struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	DriverID    uuid.UUID  `json:"driver_id" db:"driver_id"`
	Origin      string     `json:"origin" db:"origin"`
	Destination string     `json:"destination" db:"destination"`
	Date        string     `json:"date" db:"date"`
	Time        string     `json:"time" db:"time"`
	Seats       int        `json:"seats" db:"seats"`
	Price       float64    `json:"price" db:"price"`
	Status      RideStatus `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// RideInput carries the mutable ride fields for create and update
type RideInput struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Seats       int     `json:"seats"`
	Price       float64 `json:"price"`
}

// RideFilter narrows ride listings. Origin and destination are substring
// matches, date is an exact match.
type RideFilter struct {
	Origin      string `json:"origin" query:"origin"`
	Destination string `json:"destination" query:"destination"`
	Date        string `json:"date" query:"date"`
}
