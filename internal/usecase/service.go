package usecase

import (
	"context"
	"errors"

	"svw.info/worksheets/internal/domain"
	"svw.info/worksheets/internal/ports"
)

// Service is the facade the adapters talk to: both puzzle generators,
// the cage solver, and the Latin-square validator.
type Service struct {
	SymbolGen ports.SymbolGenerator
	KenKenGen ports.KenKenGenerator
	Solver    ports.KenKenSolver
	Validator ports.Validator
}

func NewService(sg ports.SymbolGenerator, kg ports.KenKenGenerator, s ports.KenKenSolver, v ports.Validator) *Service {
	return &Service{SymbolGen: sg, KenKenGen: kg, Solver: s, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) GenerateSymbolGrid(ctx context.Context, seed int64, p domain.SymbolParams) (*domain.SymbolPuzzle, ports.Stats, error) {
	if u.SymbolGen == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.SymbolGen.Generate(ctx, seed, p)
}

func (u *Service) GenerateKenKen(ctx context.Context, seed int64, spec domain.KenKenSpec) (*domain.KenKenPuzzle, ports.Stats, error) {
	if u.KenKenGen == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.KenKenGen.Generate(ctx, seed, spec)
}

func (u *Service) SolveKenKen(ctx context.Context, p *domain.KenKenPuzzle, maxSolutions int) ([][][]int, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, p, maxSolutions)
}

func (u *Service) Validate(ctx context.Context, size int, grid [][]int) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, size, grid)
}
