package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment records a simulated payment for a booking. At most one completed
// payment exists per (ride, payer) pair.
type Payment struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	RideID        uuid.UUID     `json:"ride_id" db:"ride_id"`
	PayerID       uuid.UUID     `json:"payer_id" db:"payer_id"`
	Amount        float64       `json:"amount" db:"amount"`
	Status        PaymentStatus `json:"status" db:"status"`
	TransactionID string        `json:"transaction_id" db:"transaction_id"`
	PaidAt        *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
}

// Receipt is the payment view assembled for a confirmed booking
type Receipt struct {
	Booking    Booking `json:"booking"`
	Payment    Payment `json:"payment"`
	Ride       Ride    `json:"ride"`
	DriverName string  `json:"driver_name"`
}
