package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/pegcount/cribbage/internal/common/clock"
	"github.com/pegcount/cribbage/internal/dealer"
	"github.com/pegcount/cribbage/internal/models"
	gameRepo "github.com/pegcount/cribbage/internal/repositories/game"
	leaderboardRepo "github.com/pegcount/cribbage/internal/repositories/leaderboard"
	gameService "github.com/pegcount/cribbage/internal/services/game"
)

type HandlersTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	handler http.Handler
}

func (s *HandlersTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	games, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	board, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	svc, err := gameService.New(&gameService.Config{
		GameRepo:        games,
		LeaderboardRepo: board,
		DealerPicker:    dealer.New(&dealer.Config{Seed: 42}),
		Clock:           &clock.DefaultClock{},
	})
	s.Require().NoError(err)

	s.handler = SetupRoutes(svc, zap.NewNop())
}

func (s *HandlersTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *HandlersTestSuite) createGame(pin string, players []string) *models.Game {
	rec := s.do(http.MethodPost, "/games", map[string]any{
		"pin":     pin,
		"players": players,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var game models.Game
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &game))
	return &game
}

func (s *HandlersTestSuite) TestCreateGame() {
	game := s.createGame("4821", []string{"Alice", "Bob"})

	s.Equal("4821", game.PIN)
	s.Equal([]string{"Alice", "Bob"}, game.Players)
	s.Equal([]int{0, 0}, game.Scores)
	s.Equal(1, game.Round)
	s.GreaterOrEqual(game.DealerIndex, 0)
	s.Less(game.DealerIndex, 2)
	s.Empty(game.History)
}

func (s *HandlersTestSuite) TestCreateGameInvalidPIN() {
	rec := s.do(http.MethodPost, "/games", map[string]any{
		"pin":     "12a",
		"players": []string{"Alice", "Bob"},
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotEmpty(resp["error"])
}

func (s *HandlersTestSuite) TestCreateGameDuplicatePIN() {
	s.createGame("4821", []string{"Alice", "Bob"})

	rec := s.do(http.MethodPost, "/games", map[string]any{
		"pin":     "4821",
		"players": []string{"Carol", "Dave"},
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlersTestSuite) TestGetGameNotFound() {
	rec := s.do(http.MethodGet, "/games/9999", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlersTestSuite) TestScoreUndoFinishFlow() {
	s.createGame("4821", []string{"Alice", "Bob"})

	rec := s.do(http.MethodPost, "/games/4821/score", map[string]any{
		"player_index": 0,
		"event":        "pair",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/games/4821/score", map[string]any{
		"player_index": 0,
		"event":        "triple",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	var game models.Game
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &game))
	s.Equal([]int{8, 0}, game.Scores)

	rec = s.do(http.MethodPost, "/games/4821/undo", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var undo struct {
		Game   models.Game `json:"game"`
		Undone bool        `json:"undone"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &undo))
	s.True(undo.Undone)
	s.Equal([]int{2, 0}, undo.Game.Scores)

	rec = s.do(http.MethodPost, "/games/4821/finish", nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/games/4821", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/leaderboard", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var entries []models.LeaderboardEntry
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entries))
	s.Require().Len(entries, 2)
	s.Equal(1, entries[0].Position)
	s.Equal("Alice", entries[0].Player)
	s.Equal(2, entries[0].TotalPoints)
	s.Equal("Bob", entries[1].Player)
	s.Equal(0, entries[1].TotalPoints)
}

func (s *HandlersTestSuite) TestNewRoundAndStartingJack() {
	created := s.createGame("4821", []string{"Alice", "Bob"})

	rec := s.do(http.MethodPost, "/games/4821/rounds", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var game models.Game
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &game))
	s.Equal(2, game.Round)
	s.Equal((created.DealerIndex+1)%2, game.DealerIndex)

	rec = s.do(http.MethodPost, "/games/4821/jack", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &game))
	s.Equal(2, game.Scores[game.DealerIndex])
}

func (s *HandlersTestSuite) TestScoreEventUnknown() {
	s.createGame("4821", []string{"Alice", "Bob"})

	rec := s.do(http.MethodPost, "/games/4821/score", map[string]any{
		"player_index": 0,
		"event":        "flush",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlersTestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
}
