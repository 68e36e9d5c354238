package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	gameService "github.com/pegcount/cribbage/internal/services/game"
)

// SetupRoutes builds the router with the game service injected
func SetupRoutes(svc gameService.Service, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(logger))

	r.Post("/games", CreateGame(svc))
	r.Get("/games/{pin}", GetGame(svc))
	r.Post("/games/{pin}/score", ScoreEvent(svc))
	r.Post("/games/{pin}/rounds", NewRound(svc))
	r.Post("/games/{pin}/jack", StartingJack(svc))
	r.Post("/games/{pin}/undo", Undo(svc))
	r.Post("/games/{pin}/finish", FinishGame(svc))
	r.Get("/leaderboard", Leaderboard(svc))
	r.Get("/healthz", Healthz)

	return r
}
