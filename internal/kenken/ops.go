package kenken

import (
	"math/rand"

	"svw.info/worksheets/internal/domain"
)

// AssignCageOperations derives a target and operation for every cage
// from the underlying solution. Single-cell cages get no operation.
// Multi-cell cages try the allowed operations in shuffled order —
// restricted to + and × above two cells — and take the first computable
// one; subtraction and division need exactly two cells, division also
// exact divisibility. Addition is the fallback since a sum always exists.
func AssignCageOperations(rng *rand.Rand, grid [][]int, cageCells [][]domain.CellCoord, allowed []domain.Operation) []domain.Cage {
	cages := make([]domain.Cage, 0, len(cageCells))
	for _, cells := range cageCells {
		values := make([]int, len(cells))
		for i, cell := range cells {
			values[i] = grid[cell.Row][cell.Col]
		}

		if len(cells) == 1 {
			cages = append(cages, domain.Cage{Cells: cells, Target: values[0], Operation: domain.OpNone})
			continue
		}

		candidates := candidateOps(allowed, len(cells))
		rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

		op := domain.OpAdd
		target := sum(values)
		for _, c := range candidates {
			if t, ok := computeTarget(c, values); ok {
				op, target = c, t
				break
			}
		}
		cages = append(cages, domain.Cage{Cells: cells, Target: target, Operation: op})
	}
	return cages
}

// candidateOps intersects the allowed operations with {+, ×} for cages
// larger than two cells.
func candidateOps(allowed []domain.Operation, cageSize int) []domain.Operation {
	out := make([]domain.Operation, 0, len(allowed))
	for _, op := range allowed {
		if cageSize > 2 && op != domain.OpAdd && op != domain.OpMultiply {
			continue
		}
		out = append(out, op)
	}
	return out
}

// computeTarget evaluates an operation over cage values, reporting
// whether the operation is computable for them.
func computeTarget(op domain.Operation, values []int) (int, bool) {
	switch op {
	case domain.OpAdd:
		return sum(values), true
	case domain.OpMultiply:
		product := 1
		for _, v := range values {
			product *= v
		}
		return product, true
	case domain.OpSubtract:
		if len(values) != 2 {
			return 0, false
		}
		d := values[0] - values[1]
		if d < 0 {
			d = -d
		}
		return d, true
	case domain.OpDivide:
		if len(values) != 2 {
			return 0, false
		}
		hi, lo := values[0], values[1]
		if hi < lo {
			hi, lo = lo, hi
		}
		if lo == 0 || hi%lo != 0 {
			return 0, false
		}
		return hi / lo, true
	}
	return 0, false
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
