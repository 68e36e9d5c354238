package dealer

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/pegcount/cribbage/internal/dealer Picker

// Picker selects the opening dealer for a new game
type Picker interface {
	// Pick returns a uniformly random index in [0, n)
	Pick(n int) int
}

// RandomPicker implements Picker using a seeded random source
type RandomPicker struct {
	random *rand.Rand
}

// Config for the dealer picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random dealer picker
func New(cfg *Config) *RandomPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomPicker{
		random: random,
	}
}

// Pick returns a uniformly random index in [0, n)
func (p *RandomPicker) Pick(n int) int {
	if n < 1 {
		return 0
	}
	return p.random.Intn(n)
}
