package solver

import "svw.info/sudoku-engines/internal/domain"

// easy is solvable by naked-singles propagation alone.
var easy = [9][9]uint8{
	{7, 0, 6, 0, 4, 0, 9, 0, 0},
	{0, 0, 0, 1, 6, 2, 0, 7, 0},
	{5, 0, 3, 0, 0, 0, 1, 0, 4},
	{0, 5, 0, 6, 0, 4, 0, 1, 0},
	{4, 3, 0, 0, 0, 0, 0, 2, 6},
	{0, 6, 0, 3, 0, 9, 0, 4, 0},
	{3, 0, 4, 0, 0, 0, 6, 0, 8},
	{0, 7, 0, 8, 3, 6, 0, 0, 0},
	{0, 0, 1, 0, 9, 0, 2, 0, 7},
}

var easySolution = [9][9]uint8{
	{7, 1, 6, 5, 4, 3, 9, 8, 2},
	{9, 4, 8, 1, 6, 2, 5, 7, 3},
	{5, 2, 3, 9, 7, 8, 1, 6, 4},
	{8, 5, 7, 6, 2, 4, 3, 1, 9},
	{4, 3, 9, 7, 5, 1, 8, 2, 6},
	{1, 6, 2, 3, 8, 9, 7, 4, 5},
	{3, 9, 4, 2, 1, 7, 6, 5, 8},
	{2, 7, 5, 8, 3, 6, 4, 9, 1},
	{6, 8, 1, 4, 9, 5, 2, 3, 7},
}

// classic is the well-known puzzle with a unique solution.
var classic = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var classicSolution = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// thinned removes eight clues from classic; naked singles stall on it while
// the search still finishes in a few thousand steps.
var thinned = [9][9]uint8{
	{0, 3, 0, 0, 0, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 0, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 0, 0, 0, 0, 3},
	{0, 0, 0, 8, 0, 3, 0, 0, 0},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 0},
	{0, 0, 0, 0, 8, 0, 0, 0, 9},
}

// minimal17 carries the minimum number of clues a proper puzzle can have.
var minimal17 = [9][9]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1, 0},
	{4, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 2, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 5, 0, 4, 0, 7},
	{0, 0, 8, 0, 0, 0, 3, 0, 0},
	{0, 0, 1, 0, 9, 0, 0, 0, 0},
	{3, 0, 0, 4, 0, 0, 2, 0, 0},
	{0, 5, 0, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 8, 0, 6, 0, 0, 0},
}

var minimal17Solution = [9][9]uint8{
	{6, 9, 3, 7, 8, 4, 5, 1, 2},
	{4, 8, 7, 5, 1, 2, 9, 3, 6},
	{1, 2, 5, 9, 6, 3, 8, 7, 4},
	{9, 3, 2, 6, 5, 1, 4, 8, 7},
	{5, 6, 8, 2, 4, 7, 3, 9, 1},
	{7, 4, 1, 3, 9, 8, 6, 2, 5},
	{3, 1, 9, 4, 7, 5, 2, 6, 8},
	{8, 5, 6, 1, 2, 9, 7, 4, 3},
	{2, 7, 4, 8, 3, 6, 1, 5, 9},
}

// hopeless has no direct clue clash, but cell (0,8) sees all nine digits:
// 1-8 in its row and a 9 inside its block.
var hopeless = [9][9]uint8{
	{1, 2, 3, 4, 5, 6, 7, 8, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 9},
}

// doubled repeats a clue inside one row and must be rejected up front.
var doubled = [9][9]uint8{
	{5, 0, 0, 0, 5, 0, 0, 0, 0},
}

func boardOf(vals [9][9]uint8) *domain.Board {
	b := &domain.Board{Values: vals}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = vals[r][c] != 0
		}
	}
	return b
}
