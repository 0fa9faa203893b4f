package symbolgrid

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"svw.info/worksheets/internal/domain"
	"svw.info/worksheets/internal/linalg"
)

// selectHints picks a subset of row/column sums that still determines
// every symbol value. It first greedily assembles a full-rank core —
// visiting equations in random order and keeping only those that raise
// the rank of the selected set — then pads with random extra equations
// until the target count is reached. Hints come back in equation-index
// order, rows before columns.
func selectHints(rng *rand.Rand, grid [][]int, symbolValues []int, p domain.SymbolParams) ([]domain.Hint, error) {
	fullMatrix := buildCoefficientMatrix(grid, p.NumSymbols)
	sums := allSums(grid, symbolValues)
	totalEquations := len(sums)

	if p.HintFraction >= 1.0 {
		return sums, nil
	}

	target := p.NumSymbols // minimal when HintFraction <= 0
	if p.HintFraction > 0.0 {
		rounded := int(math.Round(p.HintFraction * float64(totalEquations)))
		if rounded > target {
			target = rounded
		}
	}
	if target > totalEquations {
		target = totalEquations
	}

	indices := rng.Perm(totalEquations)

	var selected []int
	for _, i := range indices {
		candidate := append(append([]int(nil), selected...), i)
		if linalg.Rank(subMatrix(fullMatrix, candidate)) > len(selected) {
			selected = candidate
			if len(selected) == p.NumSymbols {
				break
			}
		}
	}

	if !linalg.HasFullRank(subMatrix(fullMatrix, selected), p.NumSymbols) {
		// The full matrix was rank-checked before we got here, so the
		// greedy pass must be able to reach full rank.
		return nil, fmt.Errorf("%w: could not find a solvable hint subset", domain.ErrGenerationExhausted)
	}

	used := make(map[int]bool, len(selected))
	for _, i := range selected {
		used[i] = true
	}
	var remaining []int
	for _, i := range indices {
		if !used[i] {
			remaining = append(remaining, i)
		}
	}
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	for len(selected) < target && len(remaining) > 0 {
		selected = append(selected, remaining[len(remaining)-1])
		remaining = remaining[:len(remaining)-1]
	}

	sort.Ints(selected)
	hints := make([]domain.Hint, len(selected))
	for i, eq := range selected {
		hints[i] = sums[eq]
	}
	return hints, nil
}
