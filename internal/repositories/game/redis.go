package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pegcount/cribbage/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for active game records
	gameKeyPrefix = "game:"
)

// ErrGameNotFound is returned when no game is stored under a PIN
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveGame persists a game under its PIN, overwriting any existing record
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.PIN == "" {
		return errors.New("game PIN cannot be empty")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Game.PIN)
	if err := r.client.Set(ctx, gameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by PIN from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.PIN == "" {
		return nil, errors.New("input and PIN cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.PIN)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// DeleteGame removes a game from Redis. Deleting a PIN with no record is a no-op.
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.PIN == "" {
		return errors.New("input and PIN cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.PIN)
	if err := r.client.Del(ctx, gameKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GameExists reports whether a game record exists for the PIN
func (r *redisRepository) GameExists(ctx context.Context, input *GameExistsInput) (bool, error) {
	if input == nil || input.PIN == "" {
		return false, errors.New("input and PIN cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.PIN)
	count, err := r.client.Exists(ctx, gameKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check game existence: %w", err)
	}

	return count > 0, nil
}
