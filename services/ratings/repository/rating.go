package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// RatingRepo implements ratings.RatingRepo backed by PostgreSQL
type RatingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(cfg *models.Config, db *sqlx.DB) *RatingRepo {
	return &RatingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRating appends a rating
func (r *RatingRepo) CreateRating(ctx context.Context, rating *models.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	rating.CreatedAt = time.Now()

	query := `
		INSERT INTO ratings (id, ride_id, rater_id, ratee_id, stars, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		rating.ID,
		rating.RideID,
		rating.RaterID,
		rating.RateeID,
		rating.Stars,
		rating.Comment,
		rating.CreatedAt,
	)
	return err
}

// ListRatingsByRatee returns all ratings a user received, newest first
func (r *RatingRepo) ListRatingsByRatee(ctx context.Context, rateeID uuid.UUID) ([]*models.Rating, error) {
	ratings := []*models.Rating{}
	query := `
		SELECT id, ride_id, rater_id, ratee_id, stars, comment, created_at
		FROM ratings
		WHERE ratee_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &ratings, query, rateeID); err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageStars computes the mean star value over all of the ratee's ratings
func (r *RatingRepo) AverageStars(ctx context.Context, rateeID uuid.UUID) (float64, error) {
	var avg float64
	query := `SELECT COALESCE(AVG(stars), 0) FROM ratings WHERE ratee_id = $1`
	if err := r.db.GetContext(ctx, &avg, query, rateeID); err != nil {
		return 0, err
	}
	return avg, nil
}
