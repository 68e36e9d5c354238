package game

import "github.com/pegcount/cribbage/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	PIN string
}

type DeleteGameInput struct {
	PIN string
}

type GameExistsInput struct {
	PIN string
}
