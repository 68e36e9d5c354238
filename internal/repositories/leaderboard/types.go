package leaderboard

import "github.com/pegcount/cribbage/internal/models"

type AddPointsInput struct {
	Player string
	Points int
}

type ListTotalsInput struct {
}

type ListTotalsOutput struct {
	Totals []*models.PlayerTotal
}
