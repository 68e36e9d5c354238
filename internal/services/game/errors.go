package game

import "errors"

// Define errors
var (
	ErrGameNotFound        = errors.New("no game found with that PIN")
	ErrInvalidPIN          = errors.New("PIN must be exactly 4 digits")
	ErrPINInUse            = errors.New("PIN already in use")
	ErrNotEnoughPlayers    = errors.New("at least 2 players are required")
	ErrEmptyPlayerName     = errors.New("player names cannot be empty")
	ErrDuplicatePlayerName = errors.New("player names must be unique")
	ErrInvalidPlayerIndex  = errors.New("player index out of range")
	ErrInvalidScoreEvent   = errors.New("unknown score event")
)
