package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pegcount/cribbage/internal/repositories/game Repository

import (
	"context"

	"github.com/pegcount/cribbage/internal/models"
)

// Repository defines the interface for active-game persistence
type Repository interface {
	// SaveGame upserts a game under its PIN
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by PIN
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game; deleting an absent PIN is not an error
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GameExists reports whether a game is stored under the PIN
	GameExists(ctx context.Context, input *GameExistsInput) (bool, error)
}
