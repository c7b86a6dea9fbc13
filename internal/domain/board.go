package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPosition = errors.New("position out of range")
	ErrInvalidValue    = errors.New("value must be between 1-9")
	ErrBadPuzzleString = errors.New("puzzle string must hold 81 cells")
)

// FromClues builds a board from a sparse clue set keyed by flat index
// (row*9 + col). Positions absent from the map stay empty.
func FromClues(clues map[int]uint8) (*Board, error) {
	b := &Board{}
	for pos, v := range clues {
		if pos < 0 || pos >= 81 {
			return nil, fmt.Errorf("clue at %d: %w", pos, ErrInvalidPosition)
		}
		if v < 1 || v > 9 {
			return nil, fmt.Errorf("clue at %d is %d: %w", pos, v, ErrInvalidValue)
		}
		r, c := pos/9, pos%9
		b.Values[r][c] = v
		b.Fixed[r][c] = true
	}
	return b, nil
}

// Parse reads a dense 81-character puzzle: row-major digits with '0' or '.'
// for empty cells. Whitespace is ignored, so multi-line layouts work too.
func Parse(s string) (*Board, error) {
	b := &Board{}
	i := 0
	for _, ch := range s {
		if ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r' || ch == '|' {
			continue
		}
		if i >= 81 {
			return nil, fmt.Errorf("cell %d: %w", i+1, ErrBadPuzzleString)
		}
		r, c := i/9, i%9
		switch {
		case ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			b.Values[r][c] = uint8(ch - '0')
			b.Fixed[r][c] = true
		default:
			return nil, fmt.Errorf("cell %d holds %q: %w", i, ch, ErrInvalidValue)
		}
		i++
	}
	if i != 81 {
		return nil, fmt.Errorf("got %d cells: %w", i, ErrBadPuzzleString)
	}
	return b, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// Complete reports whether every cell holds a digit.
func (b *Board) Complete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Flat returns the board as an 81-character puzzle string ('.' for empty).
func (b *Board) Flat() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}
