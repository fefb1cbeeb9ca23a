package board

import (
	"math/rand"
	"testing"

	game_constants "Damka/constants/game"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSnakeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		layout := Generate(rng)

		assert.LessOrEqual(t, len(layout.Snakes), game_constants.SnakeCount)
		assert.Greater(t, len(layout.Snakes), 0)

		for start, end := range layout.Snakes {
			assert.GreaterOrEqual(t, start, game_constants.SnakeStartMin)
			assert.LessOrEqual(t, start, game_constants.SnakeStartMax)
			assert.GreaterOrEqual(t, end, 1)
			assert.Less(t, end, start, "snake must go down")
		}
	}
}

func TestGenerateLadderBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 500; i++ {
		layout := Generate(rng)

		assert.LessOrEqual(t, len(layout.Ladders), game_constants.LadderCount)
		assert.Greater(t, len(layout.Ladders), 0)

		for start, end := range layout.Ladders {
			assert.GreaterOrEqual(t, start, game_constants.LadderStartMin)
			assert.LessOrEqual(t, start, game_constants.LadderStartMax)
			assert.LessOrEqual(t, end, game_constants.BoardSquares)
			assert.Greater(t, end, start, "ladder must go up")
		}
	}
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(42)))
	b := Generate(rand.New(rand.NewSource(42)))

	assert.Equal(t, a.Snakes, b.Snakes)
	assert.Equal(t, a.Ladders, b.Ladders)
}

// Duplicate starts overwrite rather than being rerolled, so the maps may
// shrink below the rolled counts but never grow past them.
func TestGenerateNeverExceedsRolledCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		layout := Generate(rng)
		assert.LessOrEqual(t, len(layout.Snakes), game_constants.SnakeCount)
		assert.LessOrEqual(t, len(layout.Ladders), game_constants.LadderCount)
	}
}
