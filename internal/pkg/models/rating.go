package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one star rating given by a ride participant to another.
// Ratings are append-only; repeated ratings from the same actor on the same
// ride are accepted and each shifts the ratee's mean.
type Rating struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RideID    uuid.UUID `json:"ride_id" db:"ride_id"`
	RaterID   uuid.UUID `json:"rater_id" db:"rater_id"`
	RateeID   uuid.UUID `json:"ratee_id" db:"ratee_id"`
	Stars     int       `json:"stars" db:"stars"`
	Comment   string    `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RateRequest is the payload for submitting a rating
type RateRequest struct {
	Stars   int    `json:"stars"`
	Comment string `json:"comment"`
}
