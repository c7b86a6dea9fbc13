package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudoku-engines/internal/domain"
	"svw.info/sudoku-engines/internal/ports"
)

// ErrUnsolvable reports that the search exhausted every candidate for the
// first unsolved cell, i.e. no assignment satisfies the constraints.
var ErrUnsolvable = errors.New("puzzle has no solution")

// BacktrackingSolver runs an exhaustive depth-first search with
// chronological backtracking. An explicit cursor walks the initially-empty
// cells in index order instead of recursing, so stack depth stays constant.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// search is the mutable state of one Solve call: a flat copy of the grid
// plus the positions that were empty at load time, in ascending order. The
// unsolved list never changes after construction; only grid cells named by
// it are written during the search.
type search struct {
	grid     [gridCells]uint8
	unsolved []int
}

func newSearch(b *domain.Board) (*search, error) {
	s := &search{}
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			v := b.Values[r][c]
			if v > 9 {
				return nil, fmt.Errorf("cell (%d,%d) holds %d: %w", r, c, v, domain.ErrInvalidValue)
			}
			pos := r*gridSize + c
			s.grid[pos] = v
			if v == 0 {
				s.unsolved = append(s.unsolved, pos)
			}
		}
	}
	for pos, v := range s.grid {
		if v != 0 && !s.isValid(pos/gridSize, pos%gridSize, v) {
			return nil, fmt.Errorf("clue %d at (%d,%d) repeats in its row, column or block", v, pos/gridSize, pos%gridSize)
		}
	}
	return s, nil
}

// isValid reports whether value may occupy (row, col) without clashing with
// another cell in the same row, column or block. The cell is a member of
// its own peer sets and is skipped by position, not removed.
func (s *search) isValid(row, col int, value uint8) bool {
	pos := row*gridSize + col
	for _, p := range rowPeers[row] {
		if p != pos && s.grid[p] == value {
			return false
		}
	}
	for _, p := range colPeers[col] {
		if p != pos && s.grid[p] == value {
			return false
		}
	}
	for _, p := range blockPeers[blockOf(row, col)] {
		if p != pos && s.grid[p] == value {
			return false
		}
	}
	return true
}

// nextCandidate returns the smallest valid value strictly greater than the
// cell's current one, or false once the cell has run out of candidates.
func (s *search) nextCandidate(pos int) (uint8, bool) {
	row, col := pos/gridSize, pos%gridSize
	for v := s.grid[pos] + 1; v <= gridSize; v++ {
		if s.isValid(row, col, v) {
			return v, true
		}
	}
	return 0, false
}

// Solve walks the unsolved list with a cursor: a candidate advances it, an
// exhausted cell is cleared and the cursor retreats to retry the previous
// cell from its last value + 1. Reaching the end of the list is success;
// retreating past the start means no solution exists.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	st, err := newSearch(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	nodes := 0
	cursor := 0
	for cursor < len(st.unsolved) {
		if nodes&0x3ff == 0 && ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		nodes++
		pos := st.unsolved[cursor]
		if v, ok := st.nextCandidate(pos); ok {
			st.grid[pos] = v
			cursor++
			continue
		}
		st.grid[pos] = 0
		cursor--
		if cursor < 0 {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
		}
	}

	out := &domain.Board{Fixed: b.Fixed}
	for pos, v := range st.grid {
		out.Values[pos/gridSize][pos%gridSize] = v
	}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
