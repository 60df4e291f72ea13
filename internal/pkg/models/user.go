package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a registered campus user. A verified user may post rides;
// verification is granted by an admin.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone,omitempty" db:"phone"`
	StudentID    string    `json:"student_id,omitempty" db:"student_id"`
	Role         string    `json:"role" db:"role"`
	Verified     bool      `json:"verified" db:"verified"`
	PasswordHash string    `json:"-" db:"password_hash"`
	RatingAvg    float64   `json:"rating_avg" db:"rating_avg"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Actor is the authenticated identity attached to a request by the JWT
// middleware. The zero value is the unauthenticated sentinel.
type Actor struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Verified bool      `json:"verified"`
}

// Authenticated reports whether the actor carries a real identity.
func (a Actor) Authenticated() bool {
	return a.ID != uuid.Nil
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries an issued token and its expiry
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	UserID    uuid.UUID `json:"user_id"`
}
