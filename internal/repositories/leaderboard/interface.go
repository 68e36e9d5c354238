package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pegcount/cribbage/internal/repositories/leaderboard Repository

import (
	"context"
)

// Repository defines the interface for the all-time leaderboard store
type Repository interface {
	// AddPoints adds points to a player's accumulated total, inserting the
	// player with that total if they have never been recorded
	AddPoints(ctx context.Context, input *AddPointsInput) error

	// ListTotals returns every recorded player with their total, in the
	// order players were first recorded
	ListTotals(ctx context.Context, input *ListTotalsInput) (*ListTotalsOutput, error)
}
