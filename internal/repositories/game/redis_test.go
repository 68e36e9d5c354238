package game

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pegcount/cribbage/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 11, 2, 19, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	game := &models.Game{
		PIN:         "4821",
		Players:     []string{"Alice", "Bob"},
		Scores:      []int{8, 3},
		DealerIndex: 1,
		Round:       2,
		History: []*models.Game{
			{
				PIN:         "4821",
				Players:     []string{"Alice", "Bob"},
				Scores:      []int{6, 3},
				DealerIndex: 1,
				Round:       2,
				History:     []*models.Game{},
			},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		PIN: "4821",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("4821", retrieved.PIN)
	s.Equal([]string{"Alice", "Bob"}, retrieved.Players)
	s.Equal([]int{8, 3}, retrieved.Scores)
	s.Equal(1, retrieved.DealerIndex)
	s.Equal(2, retrieved.Round)
	s.Require().Len(retrieved.History, 1)
	s.Equal([]int{6, 3}, retrieved.History[0].Scores)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
	s.Equal(s.testNow.Unix(), retrieved.UpdatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{
		PIN: "0000",
	})
	s.Require().Error(err)
	s.Equal(ErrGameNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSaveGameOverwrites() {
	game := &models.Game{
		PIN:     "1234",
		Players: []string{"Alice", "Bob"},
		Scores:  []int{0, 0},
		Round:   1,
	}

	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game}))

	game.Scores = []int{2, 0}
	game.Round = 3
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game}))

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{PIN: "1234"})
	s.Require().NoError(err)
	s.Equal([]int{2, 0}, retrieved.Scores)
	s.Equal(3, retrieved.Round)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	game := &models.Game{
		PIN:     "7777",
		Players: []string{"Alice", "Bob"},
		Scores:  []int{0, 0},
		Round:   1,
	}

	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game}))

	err := s.repo.DeleteGame(context.Background(), &DeleteGameInput{PIN: "7777"})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(context.Background(), &GetGameInput{PIN: "7777"})
	s.Require().Error(err)
	s.Equal(ErrGameNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeleteAbsentGameIsNoOp() {
	err := s.repo.DeleteGame(context.Background(), &DeleteGameInput{PIN: "9999"})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGameExists() {
	exists, err := s.repo.GameExists(context.Background(), &GameExistsInput{PIN: "4821"})
	s.Require().NoError(err)
	s.False(exists)

	game := &models.Game{
		PIN:     "4821",
		Players: []string{"Alice", "Bob"},
		Scores:  []int{0, 0},
		Round:   1,
	}
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game}))

	exists, err = s.repo.GameExists(context.Background(), &GameExistsInput{PIN: "4821"})
	s.Require().NoError(err)
	s.True(exists)
}
