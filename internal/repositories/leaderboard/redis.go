package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/pegcount/cribbage/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Hash of player name -> accumulated total
	totalsKey = "leaderboard:totals"

	// List of player names in first-recorded order. Redis sorted sets break
	// score ties lexicographically, so tie order is kept here instead.
	playersKey = "leaderboard:players"
)

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
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

// AddPoints adds points to a player's total, inserting the player if absent.
// A zero-point addition still records the player.
func (r *redisRepository) AddPoints(ctx context.Context, input *AddPointsInput) error {
	if input == nil || input.Player == "" {
		return errors.New("input and player cannot be empty")
	}

	if input.Points < 0 {
		return errors.New("points cannot be negative")
	}

	known, err := r.client.HExists(ctx, totalsKey, input.Player).Result()
	if err != nil {
		return fmt.Errorf("failed to check player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, totalsKey, input.Player, int64(input.Points))
	if !known {
		pipe.RPush(ctx, playersKey, input.Player)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add points: %w", err)
	}

	return nil
}

// ListTotals returns every recorded player with their total, in the order
// players were first recorded
func (r *redisRepository) ListTotals(ctx context.Context, input *ListTotalsInput) (*ListTotalsOutput, error) {
	players, err := r.client.LRange(ctx, playersKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player list: %w", err)
	}

	if len(players) == 0 {
		return &ListTotalsOutput{
			Totals: []*models.PlayerTotal{},
		}, nil
	}

	totals, err := r.client.HGetAll(ctx, totalsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	result := make([]*models.PlayerTotal, 0, len(players))
	for _, player := range players {
		raw, ok := totals[player]
		if !ok {
			// Player list and totals hash drifted apart
			continue
		}

		total, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse total for %s: %w", player, err)
		}

		result = append(result, &models.PlayerTotal{
			Player:      player,
			TotalPoints: total,
		})
	}

	return &ListTotalsOutput{
		Totals: result,
	}, nil
}
