package game

import (
	"github.com/pegcount/cribbage/internal/common/clock"
	"github.com/pegcount/cribbage/internal/dealer"
	"github.com/pegcount/cribbage/internal/models"
	gameRepo "github.com/pegcount/cribbage/internal/repositories/game"
	leaderboardRepo "github.com/pegcount/cribbage/internal/repositories/leaderboard"
)

// ScoreEvent identifies a pegging event with a fixed point value
type ScoreEvent string

const (
	// ScoreEventFifteen is a count landing exactly on 15 (2 points)
	ScoreEventFifteen ScoreEvent = "fifteen"

	// ScoreEventThirtyOne is a count landing exactly on 31 (2 points)
	ScoreEventThirtyOne ScoreEvent = "thirty_one"

	// ScoreEventPair is two cards of the same rank (2 points)
	ScoreEventPair ScoreEvent = "pair"

	// ScoreEventTriple is three cards of the same rank (6 points)
	ScoreEventTriple ScoreEvent = "triple"

	// ScoreEventRun is three cards in a row (6 points)
	ScoreEventRun ScoreEvent = "run"

	// ScoreEventGo is awarded when the previous player couldn't play (1 point)
	ScoreEventGo ScoreEvent = "go"

	// ScoreEventStartingJack is the jack turned as the starter (2 points).
	// ApplyStartingJack pegs it for the dealer directly; views that address
	// players by seat can send it through ApplyScoreEvent instead.
	ScoreEventStartingJack ScoreEvent = "starting_jack"
)

// scoreEventPoints maps each pegging event to its fixed point value
var scoreEventPoints = map[ScoreEvent]int{
	ScoreEventFifteen:      2,
	ScoreEventThirtyOne:    2,
	ScoreEventPair:         2,
	ScoreEventTriple:       6,
	ScoreEventRun:          6,
	ScoreEventGo:           1,
	ScoreEventStartingJack: 2,
}

// startingJackPoints is what the dealer pegs for the starting jack
const startingJackPoints = 2

// Points returns the event's point value and whether the event is known
func (e ScoreEvent) Points() (int, bool) {
	points, ok := scoreEventPoints[e]
	return points, ok
}

// Config holds configuration for the game service
type Config struct {
	// Maximum undo snapshots kept per game; oldest are dropped first
	MaxHistoryDepth int

	// Repository dependencies
	GameRepo        gameRepo.Repository
	LeaderboardRepo leaderboardRepo.Repository

	// Service dependencies
	DealerPicker dealer.Picker
	Clock        clock.Clock
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// PIN is the caller-chosen 4-digit game code
	PIN string

	// Players contains the display names in seating order
	Players []string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// JoinGameInput contains parameters for loading an active game
type JoinGameInput struct {
	PIN string
}

// JoinGameOutput contains the loaded game state
type JoinGameOutput struct {
	Game *models.Game
}

// ApplyScoreEventInput contains parameters for scoring a pegging event
type ApplyScoreEventInput struct {
	PIN string

	// PlayerIndex identifies the scoring player by seat
	PlayerIndex int

	// Event is the pegging event being scored
	Event ScoreEvent
}

// ApplyScoreEventOutput contains the updated game state
type ApplyScoreEventOutput struct {
	Game *models.Game
}

// AdvanceRoundInput contains parameters for starting a new round
type AdvanceRoundInput struct {
	PIN string
}

// AdvanceRoundOutput contains the updated game state
type AdvanceRoundOutput struct {
	Game *models.Game
}

// ApplyStartingJackInput contains parameters for scoring the starting jack
type ApplyStartingJackInput struct {
	PIN string
}

// ApplyStartingJackOutput contains the updated game state
type ApplyStartingJackOutput struct {
	Game *models.Game
}

// UndoInput contains parameters for undoing the last mutation
type UndoInput struct {
	PIN string
}

// UndoOutput contains the state after the undo
type UndoOutput struct {
	Game *models.Game

	// Undone is false when there was nothing to undo
	Undone bool
}

// FinishGameInput contains parameters for finishing a game
type FinishGameInput struct {
	PIN string
}

// FinishGameOutput contains the result of finishing a game
type FinishGameOutput struct {
	Success bool
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct {
}

// GetLeaderboardOutput contains the ranked standings
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}
