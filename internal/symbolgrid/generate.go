// Package symbolgrid generates symbol-sum grid puzzles: an N×N grid of
// symbols, a hidden value per symbol, and a subset of row/column sums
// revealed as hints. The revealed subset is always rank-sufficient to
// recover every symbol value.
package symbolgrid

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"svw.info/worksheets/internal/domain"
	"svw.info/worksheets/internal/linalg"
	"svw.info/worksheets/internal/ports"
)

// DefaultMaxRetries bounds the generate-and-test loop when the caller
// does not supply a budget.
const DefaultMaxRetries = 100

// Generator builds symbol-grid puzzles by randomized generate-and-test.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// Generate creates a puzzle for the given parameters. Each attempt picks
// symbol values, fills a grid covering every symbol, and keeps the grid
// only if all 2N sum equations have rank >= NumSymbols; hint selection
// then reduces the revealed equations without losing that rank. Attempts
// exhausting the retry budget fail with domain.ErrGenerationExhausted.
func (g *Generator) Generate(ctx context.Context, seed int64, p domain.SymbolParams) (*domain.SymbolPuzzle, ports.Stats, error) {
	start := time.Now()
	if err := ValidateParams(p); err != nil {
		return nil, ports.Stats{}, err
	}

	maxRetries := p.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	rng := rand.New(rand.NewSource(seed))

	attempts := 0
	for attempts < maxRetries {
		if ctx.Err() != nil {
			return nil, ports.Stats{Attempts: attempts, Duration: time.Since(start)}, ctx.Err()
		}
		attempts++

		symbolValues := chooseSymbolValues(rng, p)
		grid := fillGrid(rng, p)

		if !linalg.HasFullRank(buildCoefficientMatrix(grid, p.NumSymbols), p.NumSymbols) {
			continue
		}

		hints, err := selectHints(rng, grid, symbolValues, p)
		if err != nil {
			return nil, ports.Stats{Attempts: attempts, Duration: time.Since(start)}, err
		}

		return &domain.SymbolPuzzle{
			Grid:         grid,
			SymbolValues: symbolValues,
			Hints:        hints,
			NumSymbols:   p.NumSymbols,
			ValueMin:     p.ValueMin,
			ValueMax:     p.ValueMax,
		}, ports.Stats{Attempts: attempts, Duration: time.Since(start)}, nil
	}

	return nil, ports.Stats{Attempts: attempts, Duration: time.Since(start)},
		fmt.Errorf("%w: no solvable symbol grid after %d attempts", domain.ErrGenerationExhausted, maxRetries)
}

// chooseSymbolValues assigns a numeric value to each symbol. Distinct
// mode samples without replacement and sorts; otherwise values are drawn
// independently and mutated until at least two differ, so a puzzle never
// degenerates to a single repeated value.
func chooseSymbolValues(rng *rand.Rand, p domain.SymbolParams) []int {
	rangeSize := p.ValueMax - p.ValueMin + 1

	if p.DistinctValues {
		perm := rng.Perm(rangeSize)
		values := make([]int, p.NumSymbols)
		for i := 0; i < p.NumSymbols; i++ {
			values[i] = p.ValueMin + perm[i]
		}
		sort.Ints(values)
		return values
	}

	values := make([]int, p.NumSymbols)
	for i := range values {
		values[i] = p.ValueMin + rng.Intn(rangeSize)
	}
	for countDistinct(values) < 2 {
		values[rng.Intn(p.NumSymbols)] = p.ValueMin + rng.Intn(rangeSize)
	}
	return values
}

func countDistinct(values []int) int {
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	return len(seen)
}

// fillGrid places every symbol index once, fills the remaining cells
// uniformly at random, and shuffles positions.
func fillGrid(rng *rand.Rand, p domain.SymbolParams) [][]int {
	cells := p.GridSize * p.GridSize
	flat := make([]int, 0, cells)
	for s := 0; s < p.NumSymbols; s++ {
		flat = append(flat, s)
	}
	for len(flat) < cells {
		flat = append(flat, rng.Intn(p.NumSymbols))
	}
	rng.Shuffle(len(flat), func(i, j int) { flat[i], flat[j] = flat[j], flat[i] })

	grid := make([][]int, p.GridSize)
	for r := 0; r < p.GridSize; r++ {
		grid[r] = flat[r*p.GridSize : (r+1)*p.GridSize]
	}
	return grid
}
