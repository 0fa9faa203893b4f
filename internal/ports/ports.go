package ports

import (
	"context"
	"time"

	"svw.info/worksheets/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int           // search nodes visited, where applicable
	Attempts int           // full generation attempts consumed
	Duration time.Duration
}

// SymbolGenerator creates symbol-sum grid puzzles.
type SymbolGenerator interface {
	Generate(ctx context.Context, seed int64, p domain.SymbolParams) (*domain.SymbolPuzzle, Stats, error)
}

// KenKenGenerator creates uniquely solvable KenKen puzzles.
type KenKenGenerator interface {
	Generate(ctx context.Context, seed int64, spec domain.KenKenSpec) (*domain.KenKenPuzzle, Stats, error)
}

// KenKenSolver enumerates solutions of a cage puzzle up to a cap.
type KenKenSolver interface {
	Solve(ctx context.Context, p *domain.KenKenPuzzle, maxSolutions int) ([][][]int, Stats, error)
}

// Validator performs fast Latin-square constraint checks (rows/cols).
type Validator interface {
	Validate(ctx context.Context, size int, grid [][]int) (ok bool, conflicts []domain.CellCoord, err error)
}
