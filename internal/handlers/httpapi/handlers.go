package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	gameService "github.com/pegcount/cribbage/internal/services/game"
)

type createGameRequest struct {
	PIN     string   `json:"pin"`
	Players []string `json:"players"`
}

type scoreEventRequest struct {
	PlayerIndex int    `json:"player_index"`
	Event       string `json:"event"`
}

type undoResponse struct {
	Game   any  `json:"game"`
	Undone bool `json:"undone"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateGame handles POST /games
func CreateGame(svc gameService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		output, err := svc.CreateGame(r.Context(), &gameService.CreateGameInput{
			PIN:     req.PIN,
			Players: req.Players,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, output.Game)
	}
}

// GetGame handles GET /games/{pin}
func GetGame(svc gameService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := svc.JoinGame(r.Context(), &gameService.JoinGameInput{
			PIN: chi.URLParam(r, "pin"),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, output.Game)
	}
}

// ScoreEvent handles POST /games/{pin}/score
func ScoreEvent(svc gameService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		output, err := svc.ApplyScoreEvent(r.Context(), &gameService.ApplyScoreEventInput{
			PIN:         chi.URLParam(r, "pin"),
			PlayerIndex: req.PlayerIndex,
			Event:       gameService.ScoreEvent(req.Event),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, output.Game)
	}
}

// NewRound handles POST /games/{pin}/rounds
func NewRound(svc gameService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := svc.AdvanceRound(r.Context(), &gameService.AdvanceRoundInput{
			PIN: chi.URLParam(r, "pin"),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, output.Game)
	}
}

// StartingJack handles POST /games/{pin}/jack
func StartingJack(svc gameService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := svc.ApplyStartingJack(r.Context(), &gameService.ApplyStartingJackInput{
			PIN: chi.URLParam(r, "pin"),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, output.Game)
	}
}

// Undo handles POST /games/{pin}/undo. The confirmation step lives in the
// view; by the time this is called the user has already confirmed.
func Undo(svc gameService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := svc.Undo(r.Context(), &gameService.UndoInput{
			PIN: chi.URLParam(r, "pin"),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, undoResponse{
			Game:   output.Game,
			Undone: output.Undone,
		})
	}
}

// FinishGame handles POST /games/{pin}/finish
func FinishGame(svc gameService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := svc.FinishGame(r.Context(), &gameService.FinishGameInput{
			PIN: chi.URLParam(r, "pin"),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// Leaderboard handles GET /leaderboard
func Leaderboard(svc gameService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := svc.GetLeaderboard(r.Context(), &gameService.GetLeaderboardInput{})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, output.Entries)
	}
}

// Healthz handles GET /healthz
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, errorResponse{Error: reason})
}

// writeServiceError maps service errors onto HTTP statuses. A rejected
// command never mutates state, so callers can simply correct and retry.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gameService.ErrGameNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, gameService.ErrInvalidPIN),
		errors.Is(err, gameService.ErrPINInUse),
		errors.Is(err, gameService.ErrNotEnoughPlayers),
		errors.Is(err, gameService.ErrEmptyPlayerName),
		errors.Is(err, gameService.ErrDuplicatePlayerName),
		errors.Is(err, gameService.ErrInvalidPlayerIndex),
		errors.Is(err, gameService.ErrInvalidScoreEvent):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
