package src

import (
	"math/rand"

	"github.com/asibahi/terminal-chess-app/src/engine"
)

// ChooseUniform picks one move uniformly at random. The orchestrator only
// calls it after confirming the game is not over, so an empty set is an
// internal logic defect and aborts loudly.
func ChooseUniform(rng *rand.Rand, legal []engine.Move) engine.Move {
	if len(legal) == 0 {
		panic("opponent: choose from empty legal-move set")
	}
	return legal[rng.Intn(len(legal))]
}
