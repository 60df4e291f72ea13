package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a rider's request to occupy seats on a ride.
// At most one booking exists per (ride, rider) pair.
type Booking struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	RideID      uuid.UUID     `json:"ride_id" db:"ride_id"`
	RiderID     uuid.UUID     `json:"rider_id" db:"rider_id"`
	Status      BookingStatus `json:"status" db:"status"`
	SeatsBooked int           `json:"seats_booked" db:"seats_booked"`
	RequestedAt time.Time     `json:"requested_at" db:"requested_at"`
}

// BookingEvent is the payload published on booking lifecycle subjects
type BookingEvent struct {
	BookingID uuid.UUID     `json:"booking_id"`
	RideID    uuid.UUID     `json:"ride_id"`
	RiderID   uuid.UUID     `json:"rider_id"`
	Status    BookingStatus `json:"status"`
}
