package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engines/internal/domain"
)

// Stats captures performance characteristics of an operation. Nodes counts
// cursor steps for the search engine and candidate eliminations for the
// propagation engine.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver produces a complete board or reports that none exists.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Reducer narrows per-cell candidate sets as far as its inference rules
// allow; the result may be partial.
type Reducer interface {
	Reduce(ctx context.Context, b *domain.Board) (*domain.Reduction, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
