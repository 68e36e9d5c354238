package game

import (
	"context"
	"errors"
	"sort"

	"github.com/pegcount/cribbage/internal/models"
	gameRepo "github.com/pegcount/cribbage/internal/repositories/game"
	leaderboardRepo "github.com/pegcount/cribbage/internal/repositories/leaderboard"
)

const defaultMaxHistoryDepth = 64

// service implements the Service interface
type service struct {
	config          *Config
	gameRepo        gameRepo.Repository
	leaderboardRepo leaderboardRepo.Repository
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameRepo == nil {
		return nil, errors.New("game repository cannot be nil")
	}

	if cfg.LeaderboardRepo == nil {
		return nil, errors.New("leaderboard repository cannot be nil")
	}

	if cfg.DealerPicker == nil {
		return nil, errors.New("dealer picker cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.MaxHistoryDepth <= 0 {
		cfg.MaxHistoryDepth = defaultMaxHistoryDepth
	}

	return &service{
		config:          cfg,
		gameRepo:        cfg.GameRepo,
		leaderboardRepo: cfg.LeaderboardRepo,
	}, nil
}

// validPIN reports whether pin is exactly 4 numeric characters
func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CreateGame starts a new game under a fresh PIN
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !validPIN(input.PIN) {
		return nil, ErrInvalidPIN
	}

	if len(input.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	seen := make(map[string]struct{}, len(input.Players))
	for _, name := range input.Players {
		if name == "" {
			return nil, ErrEmptyPlayerName
		}
		if _, ok := seen[name]; ok {
			return nil, ErrDuplicatePlayerName
		}
		seen[name] = struct{}{}
	}

	exists, err := s.gameRepo.GameExists(ctx, &gameRepo.GameExistsInput{
		PIN: input.PIN,
	})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPINInUse
	}

	now := s.config.Clock.Now()
	game := &models.Game{
		PIN:         input.PIN,
		Players:     append([]string(nil), input.Players...),
		Scores:      make([]int, len(input.Players)),
		DealerIndex: s.config.DealerPicker.Pick(len(input.Players)),
		Round:       1,
		History:     []*models.Game{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// JoinGame loads the stored state for an active PIN
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.PIN)
	if err != nil {
		return nil, err
	}

	return &JoinGameOutput{
		Game: game,
	}, nil
}

// ApplyScoreEvent adds a pegging event's points to one player
func (s *service) ApplyScoreEvent(ctx context.Context, input *ApplyScoreEventInput) (*ApplyScoreEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	points, ok := input.Event.Points()
	if !ok {
		return nil, ErrInvalidScoreEvent
	}

	game, err := s.getGame(ctx, input.PIN)
	if err != nil {
		return nil, err
	}

	if input.PlayerIndex < 0 || input.PlayerIndex >= len(game.Players) {
		return nil, ErrInvalidPlayerIndex
	}

	s.pushHistory(game)
	game.Scores[input.PlayerIndex] += points

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &ApplyScoreEventOutput{
		Game: game,
	}, nil
}

// AdvanceRound moves the deal to the next player and starts a new round
func (s *service) AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.PIN)
	if err != nil {
		return nil, err
	}

	s.pushHistory(game)
	game.DealerIndex = (game.DealerIndex + 1) % len(game.Players)
	game.Round++

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &AdvanceRoundOutput{
		Game: game,
	}, nil
}

// ApplyStartingJack awards the dealer two points for the starting jack
func (s *service) ApplyStartingJack(ctx context.Context, input *ApplyStartingJackInput) (*ApplyStartingJackOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.PIN)
	if err != nil {
		return nil, err
	}

	s.pushHistory(game)
	game.Scores[game.DealerIndex] += startingJackPoints

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &ApplyStartingJackOutput{
		Game: game,
	}, nil
}

// Undo restores the most recent snapshot. When history is empty the current
// state is returned unchanged and nothing is persisted.
func (s *service) Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.PIN)
	if err != nil {
		return nil, err
	}

	if len(game.History) == 0 {
		return &UndoOutput{
			Game:   game,
			Undone: false,
		}, nil
	}

	// Pop the latest snapshot and hand it the rest of the stack, so repeated
	// undo walks backward one step at a time
	restored := game.History[len(game.History)-1]
	restored.History = game.History[:len(game.History)-1]

	if err := s.saveGame(ctx, restored); err != nil {
		return nil, err
	}

	return &UndoOutput{
		Game:   restored,
		Undone: true,
	}, nil
}

// FinishGame folds final scores into the leaderboard and deletes the game
func (s *service) FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.PIN)
	if err != nil {
		return nil, err
	}

	for i, player := range game.Players {
		err = s.leaderboardRepo.AddPoints(ctx, &leaderboardRepo.AddPointsInput{
			Player: player,
			Points: game.Scores[i],
		})
		if err != nil {
			return nil, err
		}
	}

	err = s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		PIN: game.PIN,
	})
	if err != nil {
		return nil, err
	}

	return &FinishGameOutput{
		Success: true,
	}, nil
}

// GetLeaderboard returns the all-time standings sorted by total descending,
// ties kept in first-recorded order, ranks numbered from 1
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	result, err := s.leaderboardRepo.ListTotals(ctx, &leaderboardRepo.ListTotalsInput{})
	if err != nil {
		return nil, err
	}

	totals := result.Totals
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].TotalPoints > totals[j].TotalPoints
	})

	entries := make([]*models.LeaderboardEntry, 0, len(totals))
	for i, total := range totals {
		entries = append(entries, &models.LeaderboardEntry{
			Position:    i + 1,
			Player:      total.Player,
			TotalPoints: total.TotalPoints,
		})
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// getGame validates the PIN format and loads the stored state. A malformed
// PIN reads the same as a missing one.
func (s *service) getGame(ctx context.Context, pin string) (*models.Game, error) {
	if !validPIN(pin) {
		return nil, ErrGameNotFound
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		PIN: pin,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return game, nil
}

// pushHistory appends a deep snapshot of the pre-mutation state. Call before
// mutating. Snapshots are stored flat: nesting each snapshot's own history
// inside it would double the record on every mutation. The stack is capped;
// the oldest snapshot is dropped first.
func (s *service) pushHistory(game *models.Game) {
	snapshot := game.Clone()
	snapshot.History = nil
	game.History = append(game.History, snapshot)
	if len(game.History) > s.config.MaxHistoryDepth {
		game.History = game.History[len(game.History)-s.config.MaxHistoryDepth:]
	}
}

// saveGame stamps the update time and persists the game
func (s *service) saveGame(ctx context.Context, game *models.Game) error {
	game.UpdatedAt = s.config.Clock.Now()
	return s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
}
