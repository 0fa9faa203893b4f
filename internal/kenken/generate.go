// Package kenken generates and solves KenKen-style arithmetic cage
// puzzles over Latin squares. Generation composes an independent Latin
// square, a random cage partition, and per-cage arithmetic, then keeps
// only compositions the solver certifies as uniquely solvable.
package kenken

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/worksheets/internal/domain"
	"svw.info/worksheets/internal/ports"
)

// DefaultMaxRetries bounds the compose-and-certify loop when the caller
// does not supply a budget.
const DefaultMaxRetries = 50

const (
	// MinSize and MaxSize bound the supported grid dimensions.
	MinSize = 2
	MaxSize = 9
)

// Generator builds uniquely solvable KenKen puzzles, delegating the
// uniqueness certificate to a solver.
type Generator struct {
	Solver ports.KenKenSolver
}

// NewGenerator wires a generator that certifies uniqueness with the
// given solver.
func NewGenerator(s ports.KenKenSolver) *Generator {
	return &Generator{Solver: s}
}

// ValidateSpec rejects out-of-range configurations, wrapping
// domain.ErrInvalidParameter.
func ValidateSpec(spec domain.KenKenSpec) error {
	if spec.Size < MinSize || spec.Size > MaxSize {
		return fmt.Errorf("%w: size must be in [%d, %d]", domain.ErrInvalidParameter, MinSize, MaxSize)
	}
	if spec.MaxCageSize < 1 {
		return fmt.Errorf("%w: max_cage_size must be >= 1", domain.ErrInvalidParameter)
	}
	return nil
}

// Generate retries Latin square → partition → operations → uniqueness
// check until a puzzle with exactly one solution comes out, failing with
// domain.ErrGenerationExhausted when the budget runs dry. No partial
// puzzle ever escapes.
func (g *Generator) Generate(ctx context.Context, seed int64, spec domain.KenKenSpec) (*domain.KenKenPuzzle, ports.Stats, error) {
	start := time.Now()
	if err := ValidateSpec(spec); err != nil {
		return nil, ports.Stats{}, err
	}

	maxRetries := spec.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	rng := rand.New(rand.NewSource(seed))

	nodes := 0
	attempts := 0
	for attempts < maxRetries {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)}, ctx.Err()
		}
		attempts++

		solution, err := GenerateLatinSquare(rng, spec.Size)
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)}, err
		}
		cageCells := PartitionIntoCages(rng, spec.Size, spec.MaxCageSize)
		cages := AssignCageOperations(rng, solution, cageCells, spec.AllowedOperations)

		candidate := &domain.KenKenPuzzle{Size: spec.Size, Solution: solution, Cages: cages}
		found, st, err := g.Solver.Solve(ctx, candidate, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)}, err
		}
		if len(found) == 1 {
			return candidate, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)}, nil
		}
	}

	return nil, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)},
		fmt.Errorf("%w: no uniquely solvable puzzle after %d attempts", domain.ErrGenerationExhausted, maxRetries)
}
