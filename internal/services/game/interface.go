package game

import "context"

// Service defines the interface for game lifecycle operations
type Service interface {
	// CreateGame starts a new game under a fresh PIN
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame loads the stored state for an active PIN
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// ApplyScoreEvent adds a pegging event's points to one player
	ApplyScoreEvent(ctx context.Context, input *ApplyScoreEventInput) (*ApplyScoreEventOutput, error)

	// AdvanceRound moves the deal to the next player and starts a new round
	AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error)

	// ApplyStartingJack awards the dealer two points for the starting jack
	ApplyStartingJack(ctx context.Context, input *ApplyStartingJackInput) (*ApplyStartingJackOutput, error)

	// Undo restores the most recent snapshot; a no-op when history is empty
	Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error)

	// FinishGame folds final scores into the leaderboard and deletes the game
	FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error)

	// GetLeaderboard returns the ranked all-time standings
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
