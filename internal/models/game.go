package models

import (
	"time"
)

// Game represents one active cribbage table, keyed by its PIN
type Game struct {
	// PIN is the 4-digit code identifying this game
	PIN string `json:"pin"`

	// Players contains the display names, in seating order, fixed for the game
	Players []string `json:"players"`

	// Scores holds each player's point total, index-aligned with Players
	Scores []int `json:"scores"`

	// DealerIndex identifies whose turn it is to deal
	DealerIndex int `json:"dealer_index"`

	// Round is the current round number, starting at 1
	Round int `json:"round"`

	// History holds prior snapshots, most recent last, used for undo
	History []*Game `json:"history"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a fully independent deep copy of the game, history included.
// Undo snapshots must never alias the live state's slices.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}

	clone := *g
	clone.Players = append([]string(nil), g.Players...)
	clone.Scores = append([]int(nil), g.Scores...)

	if g.History != nil {
		clone.History = make([]*Game, len(g.History))
		for i, snapshot := range g.History {
			clone.History[i] = snapshot.Clone()
		}
	}

	return &clone
}
