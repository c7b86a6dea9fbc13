package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-engines/internal/domain"
	"svw.info/sudoku-engines/internal/ports"
)

// Service fronts the two solving engines plus validation and persistence.
// The engines are alternative implementations of the same puzzle-in,
// grid-out contract and never feed each other.
type Service struct {
	Search    ports.Solver
	Propagate ports.Reducer
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, p ports.Reducer, v ports.Validator, st ports.Storage) *Service {
	return &Service{Search: s, Propagate: p, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve runs the exhaustive backtracking engine.
func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Search == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Search.Solve(ctx, b)
}

// Reduce runs the constraint-propagation engine; the result may be partial.
func (u *Service) Reduce(ctx context.Context, b *domain.Board) (*domain.Reduction, ports.Stats, error) {
	if u.Propagate == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Propagate.Reduce(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
