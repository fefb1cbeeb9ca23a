package board

import (
	"math/rand"

	game_constants "Damka/constants/game"
)

// Layout is a generated snakes & ladders board. Both maps go start square ->
// end square; a snake's end is always below its start, a ladder's end always
// above. The layout is generated server-side once per session so both
// players render the identical board.
type Layout struct {
	Snakes  map[int]int `json:"snakes"`
	Ladders map[int]int `json:"ladders"`
}

// Generate produces a randomized layout: 10 snakes starting in [10,98] and
// falling to [1,start-1], 9 ladders starting in [1,89] and climbing to
// [start+1,100]. Two snakes (or two ladders) rolling the same start square
// overwrite each other, so the maps can end up with fewer distinct entries
// than were rolled. Snakes and ladders are not checked against each other
// either; a square can host both.
func Generate(rng *rand.Rand) Layout {
	snakes := make(map[int]int, game_constants.SnakeCount)
	for i := 0; i < game_constants.SnakeCount; i++ {
		span := game_constants.SnakeStartMax - game_constants.SnakeStartMin + 1
		start := rng.Intn(span) + game_constants.SnakeStartMin
		end := rng.Intn(start-1) + 1
		snakes[start] = end
	}

	ladders := make(map[int]int, game_constants.LadderCount)
	for i := 0; i < game_constants.LadderCount; i++ {
		start := rng.Intn(game_constants.LadderStartMax) + game_constants.LadderStartMin
		end := start + 1 + rng.Intn(game_constants.BoardSquares-start)
		ladders[start] = end
	}

	return Layout{Snakes: snakes, Ladders: ladders}
}
