package validator

import (
	"context"

	"svw.info/sudoku-engines/internal/domain"
)

// FastValidator checks the 27 units (9 rows, 9 columns, 9 boxes) with one
// bitmask pass each and reports the coordinates of repeated digits.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conflicts := make([]domain.CellCoord, 0, 8)
	scan := func(cells [9]domain.CellCoord) {
		var seen uint16
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := uint16(1) << val
			if seen&bit != 0 {
				conflicts = append(conflicts, cc)
			}
			seen |= bit
		}
	}
	for i := 0; i < 9; i++ {
		scan(rowUnit(i))
		scan(colUnit(i))
		scan(boxUnit(i))
	}
	return len(conflicts) == 0, conflicts, nil
}

func rowUnit(r int) [9]domain.CellCoord {
	var u [9]domain.CellCoord
	for c := 0; c < 9; c++ {
		u[c] = domain.CellCoord{Row: r, Col: c}
	}
	return u
}

func colUnit(c int) [9]domain.CellCoord {
	var u [9]domain.CellCoord
	for r := 0; r < 9; r++ {
		u[r] = domain.CellCoord{Row: r, Col: c}
	}
	return u
}

func boxUnit(b int) [9]domain.CellCoord {
	br, bc := (b/3)*3, (b%3)*3
	var u [9]domain.CellCoord
	for i := 0; i < 9; i++ {
		u[i] = domain.CellCoord{Row: br + i/3, Col: bc + i%3}
	}
	return u
}
