package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/database"
)

// PresenceRepo implements chat.PresenceRepo on Redis sets. Each room keeps a
// chat:room:<rideID>:members set of user IDs.
type PresenceRepo struct {
	redisClient *database.RedisClient
}

// NewPresenceRepository creates a new presence repository
func NewPresenceRepository(redisClient *database.RedisClient) *PresenceRepo {
	return &PresenceRepo{redisClient: redisClient}
}

func roomKey(rideID uuid.UUID) string {
	return fmt.Sprintf("chat:room:%s:members", rideID)
}

// AddMember records a user as present in the room
func (r *PresenceRepo) AddMember(ctx context.Context, rideID, userID uuid.UUID) error {
	return r.redisClient.SAdd(ctx, roomKey(rideID), userID.String())
}

// RemoveMember clears a user's presence in the room
func (r *PresenceRepo) RemoveMember(ctx context.Context, rideID, userID uuid.UUID) error {
	return r.redisClient.SRem(ctx, roomKey(rideID), userID.String())
}

// Members returns the user IDs present in the room
func (r *PresenceRepo) Members(ctx context.Context, rideID uuid.UUID) ([]string, error) {
	return r.redisClient.SMembers(ctx, roomKey(rideID))
}
