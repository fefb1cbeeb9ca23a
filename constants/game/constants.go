package game_constants

// Snakes & ladders board layout constants. The board is the classic 10x10
// grid; snakes start high enough that they always have somewhere to fall
// ([10,98]) and ladders start low enough that they always have somewhere to
// climb ([1,89]).
const BoardSquares = 100

const (
	SnakeCount    = 10
	SnakeStartMin = 10
	SnakeStartMax = 98

	LadderCount    = 9
	LadderStartMin = 1
	LadderStartMax = 89
)
