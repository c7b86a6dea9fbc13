// Package render turns board snapshots into fixed-width text. It never
// mutates its input.
package render

import (
	"fmt"
	"strings"

	"svw.info/sudoku-engines/internal/domain"
)

// Text renders one digit per cell with '.' for empty, a gap every three
// columns and a blank line every three rows.
func Text(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteByte(' ')
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Reduction renders the resolved grid followed by a summary line and, for
// each still-ambiguous cell, its remaining candidates.
func Reduction(rd *domain.Reduction) string {
	var sb strings.Builder
	sb.WriteString(Text(&rd.Board))
	if rd.Complete {
		sb.WriteString("\nsolved\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "\n%d cells unresolved\n", rd.Unresolved())
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if cand := rd.Candidates[r][c]; len(cand) > 1 {
				fmt.Fprintf(&sb, "(%d,%d): %v\n", r, c, cand)
			}
		}
	}
	return sb.String()
}
