package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/loopline/dispatch/internal/pkg/database"
	"github.com/loopline/dispatch/internal/pkg/models"
)

// RideRepo implements the ride repository interface
type RideRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRideRepository creates a new ride repository
func NewRideRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *RideRepo {
	return &RideRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
