package solver

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"time"

	"svw.info/sudoku-engines/internal/domain"
	"svw.info/sudoku-engines/internal/ports"
)

// ErrContradiction reports that elimination emptied a cell's candidate set,
// which only happens on inconsistent input.
var ErrContradiction = errors.New("cell has no remaining candidates")

// allCandidates has bits 1 through 9 set.
const allCandidates pcell = 0x3fe

// PropagationSolver narrows per-cell candidate sets by naked-single
// elimination: each newly determined cell removes its value from the
// candidates of its 20 peers. It performs no search or guessing, so it may
// stop with cells still ambiguous; that is a partial result, not an error.
type PropagationSolver struct{}

func NewPropagationSolver() *PropagationSolver { return &PropagationSolver{} }

// pcell is one cell's remaining candidates, one bit per digit 1-9.
type pcell uint16

func (c pcell) solved() bool     { return bits.OnesCount16(uint16(c)) == 1 }
func (c pcell) value() uint8     { return uint8(bits.TrailingZeros16(uint16(c))) }
func (c pcell) has(v uint8) bool { return c&(1<<v) != 0 }

// solvedCell records a cell the instant its domain collapsed to one value.
type solvedCell struct {
	row, col int
	value    uint8
}

// reduction holds the domains and the FIFO queue of freshly solved cells.
// The queue is an append-only slice with a moving head: a cell joins it at
// most once, so it never exceeds 81 entries.
type reduction struct {
	cells        [gridSize][gridSize]pcell
	queue        []solvedCell
	eliminations int
}

func newReduction(b *domain.Board) (*reduction, error) {
	rd := &reduction{queue: make([]solvedCell, 0, gridCells)}
	var rowSeen, colSeen, blockSeen [gridSize]pcell
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			v := b.Values[r][c]
			switch {
			case v == 0:
				rd.cells[r][c] = allCandidates
			case v <= 9:
				bit := pcell(1) << v
				bl := blockOf(r, c)
				if rowSeen[r]&bit != 0 || colSeen[c]&bit != 0 || blockSeen[bl]&bit != 0 {
					return nil, fmt.Errorf("clue %d at (%d,%d) repeats in its row, column or block", v, r, c)
				}
				rowSeen[r] |= bit
				colSeen[c] |= bit
				blockSeen[bl] |= bit
				rd.cells[r][c] = bit
				rd.queue = append(rd.queue, solvedCell{r, c, v})
			default:
				return nil, fmt.Errorf("cell (%d,%d) holds %d: %w", r, c, v, domain.ErrInvalidValue)
			}
		}
	}
	return rd, nil
}

// run drains the queue, removing each dequeued value from the domains of
// the 8 row peers, 8 column peers, and the 4 block peers that share neither
// row nor column.
func (rd *reduction) run() error {
	for head := 0; head < len(rd.queue); head++ {
		sc := rd.queue[head]
		for i := 0; i < gridSize; i++ {
			if i != sc.col {
				if err := rd.eliminate(sc.row, i, sc.value); err != nil {
					return err
				}
			}
			if i != sc.row {
				if err := rd.eliminate(i, sc.col, sc.value); err != nil {
					return err
				}
			}
		}
		br, bc := (sc.row/3)*3, (sc.col/3)*3
		for r := br; r < br+3; r++ {
			for c := bc; c < bc+3; c++ {
				if r == sc.row || c == sc.col {
					continue
				}
				if err := rd.eliminate(r, c, sc.value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// eliminate removes value from the cell's domain. A cell that collapses to
// one candidate is enqueued exactly once, at the moment of collapse.
// Removing a solved cell's only value would empty its domain, so two
// determined cells sharing a unit and a value surface as a contradiction
// instead of a silent size-0 domain. Domains only ever shrink.
func (rd *reduction) eliminate(row, col int, value uint8) error {
	c := rd.cells[row][col]
	if !c.has(value) {
		return nil
	}
	if c.solved() {
		return fmt.Errorf("cell (%d,%d): %w", row, col, ErrContradiction)
	}
	c &^= 1 << value
	rd.cells[row][col] = c
	rd.eliminations++
	if c.solved() {
		rd.queue = append(rd.queue, solvedCell{row, col, c.value()})
	}
	return nil
}

// snapshot converts the domains into the caller-facing form.
func (rd *reduction) snapshot(in *domain.Board) *domain.Reduction {
	out := &domain.Reduction{Complete: true}
	out.Board.Fixed = in.Fixed
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			cell := rd.cells[r][c]
			for v := uint8(1); v <= 9; v++ {
				if cell.has(v) {
					out.Candidates[r][c] = append(out.Candidates[r][c], v)
				}
			}
			if cell.solved() {
				out.Board.Values[r][c] = cell.value()
			} else {
				out.Complete = false
			}
		}
	}
	return out
}

// Reduce builds singleton domains for the givens, enqueues them in
// row-major order, and propagates until the queue empties. Stats.Nodes is
// the number of candidate eliminations performed.
func (s *PropagationSolver) Reduce(ctx context.Context, b *domain.Board) (*domain.Reduction, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	rd, err := newReduction(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if err := rd.run(); err != nil {
		return nil, ports.Stats{Nodes: rd.eliminations, Duration: time.Since(start)}, err
	}
	return rd.snapshot(b), ports.Stats{Nodes: rd.eliminations, Duration: time.Since(start)}, nil
}
