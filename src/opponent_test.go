package src

import (
	"math/rand"
	"testing"

	"github.com/asibahi/terminal-chess-app/src/base"
	"github.com/asibahi/terminal-chess-app/src/engine"
)

func TestChooseUniformAlwaysFromSet(t *testing.T) {
	legal := []engine.Move{
		fakeMove{from: base.NewSquare(4, 1), to: base.NewSquare(4, 3)},
		fakeMove{from: base.NewSquare(6, 0), to: base.NewSquare(5, 2)},
		fakeMove{from: base.NewSquare(3, 1), to: base.NewSquare(3, 2)},
	}
	rng := rand.New(rand.NewSource(7))

	seen := make(map[engine.Move]int)
	for i := 0; i < 1000; i++ {
		mv := ChooseUniform(rng, legal)
		found := false
		for _, l := range legal {
			if mv == l {
				found = true
			}
		}
		if !found {
			t.Fatalf("chosen move %v not in legal set", mv)
		}
		seen[mv]++
	}
	// every candidate should come up over 1000 trials
	for _, l := range legal {
		if seen[l] == 0 {
			t.Errorf("move %v never chosen", l)
		}
	}
}

func TestChooseUniformPanicsOnEmptySet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty legal-move set")
		}
	}()
	ChooseUniform(rand.New(rand.NewSource(1)), nil)
}
