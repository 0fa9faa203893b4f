package kenken

import (
	"context"
	"fmt"
	"time"

	"svw.info/worksheets/internal/domain"
	"svw.info/worksheets/internal/ports"
)

// Solver enumerates solutions of a cage puzzle by backtracking with
// constraint propagation.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

// ValidatePuzzle checks the structural invariants a cage puzzle must
// satisfy before solving: every cell inside the grid and caged exactly
// once, multi-cell cages carrying a known operation, and subtraction or
// division restricted to exactly two cells. Puzzles built by Generate
// hold these by construction; caller-supplied ones may not. Failures
// wrap domain.ErrInvalidParameter.
func ValidatePuzzle(p *domain.KenKenPuzzle) error {
	if p.Size < 1 {
		return fmt.Errorf("%w: size must be >= 1", domain.ErrInvalidParameter)
	}
	caged := make([][]bool, p.Size)
	for r := range caged {
		caged[r] = make([]bool, p.Size)
	}
	for i, cage := range p.Cages {
		switch cage.Operation {
		case domain.OpNone:
			if len(cage.Cells) != 1 {
				return fmt.Errorf("%w: cage %d has %d cells but no operation", domain.ErrInvalidParameter, i, len(cage.Cells))
			}
		case domain.OpAdd, domain.OpMultiply:
			if len(cage.Cells) == 0 {
				return fmt.Errorf("%w: cage %d is empty", domain.ErrInvalidParameter, i)
			}
		case domain.OpSubtract, domain.OpDivide:
			if len(cage.Cells) != 2 {
				return fmt.Errorf("%w: cage %d: %s requires exactly 2 cells, got %d",
					domain.ErrInvalidParameter, i, cage.Operation, len(cage.Cells))
			}
		default:
			return fmt.Errorf("%w: cage %d: unknown operation %q", domain.ErrInvalidParameter, i, cage.Operation)
		}
		for _, cell := range cage.Cells {
			if cell.Row < 0 || cell.Row >= p.Size || cell.Col < 0 || cell.Col >= p.Size {
				return fmt.Errorf("%w: cage %d: cell (%d,%d) outside the %d×%d grid",
					domain.ErrInvalidParameter, i, cell.Row, cell.Col, p.Size, p.Size)
			}
			if caged[cell.Row][cell.Col] {
				return fmt.Errorf("%w: cell (%d,%d) belongs to more than one cage",
					domain.ErrInvalidParameter, cell.Row, cell.Col)
			}
			caged[cell.Row][cell.Col] = true
		}
	}
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			if !caged[r][c] {
				return fmt.Errorf("%w: cell (%d,%d) belongs to no cage", domain.ErrInvalidParameter, r, c)
			}
		}
	}
	return nil
}

// Solve fills the grid in row-major order, trying 1..size per cell minus
// values already used in the cell's row or column, and prunes against
// the owning cage after each placement. It returns up to maxSolutions
// distinct solved grids; with a cap of 2 it distinguishes unique from
// ambiguous puzzles.
func (s *Solver) Solve(ctx context.Context, p *domain.KenKenPuzzle, maxSolutions int) ([][][]int, ports.Stats, error) {
	start := time.Now()
	if err := ValidatePuzzle(p); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if maxSolutions <= 0 {
		return nil, ports.Stats{Duration: time.Since(start)}, nil
	}

	size := p.Size
	cageOf := make([][]int, size)
	for r := range cageOf {
		cageOf[r] = make([]int, size)
	}
	for i, cage := range p.Cages {
		for _, cell := range cage.Cells {
			cageOf[cell.Row][cell.Col] = i
		}
	}

	grid := make([][]int, size)
	for r := range grid {
		grid[r] = make([]int, size)
	}
	rowUsed := make([][]bool, size)
	colUsed := make([][]bool, size)
	for i := 0; i < size; i++ {
		rowUsed[i] = make([]bool, size+1)
		colUsed[i] = make([]bool, size+1)
	}

	var solutions [][][]int
	nodes := 0

	var dfs func(pos int) bool
	dfs = func(pos int) bool {
		if ctx.Err() != nil {
			return true
		}
		if pos == size*size {
			solutions = append(solutions, copyGrid(grid))
			return len(solutions) >= maxSolutions
		}
		r, c := pos/size, pos%size
		for v := 1; v <= size; v++ {
			if rowUsed[r][v] || colUsed[c][v] {
				continue
			}
			nodes++
			grid[r][c] = v
			rowUsed[r][v] = true
			colUsed[c][v] = true
			if cageFeasible(grid, &p.Cages[cageOf[r][c]], size) && dfs(pos+1) {
				return true
			}
			grid[r][c] = 0
			rowUsed[r][v] = false
			colUsed[c][v] = false
		}
		return false
	}
	_ = dfs(0)

	return solutions, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}

// cageFeasible checks a cage against its partially filled cells. Addition
// prunes by bounding the remaining sum, multiplication by divisibility;
// subtraction and division are only checkable once the cage is complete,
// as is the exact constraint for every operation.
func cageFeasible(grid [][]int, cage *domain.Cage, size int) bool {
	filled := 0
	sumPlaced := 0
	product := 1
	for _, cell := range cage.Cells {
		v := grid[cell.Row][cell.Col]
		if v == 0 {
			continue
		}
		filled++
		sumPlaced += v
		product *= v
	}
	unfilled := len(cage.Cells) - filled
	complete := unfilled == 0

	switch cage.Operation {
	case domain.OpNone:
		return !complete || sumPlaced == cage.Target
	case domain.OpAdd:
		if complete {
			return sumPlaced == cage.Target
		}
		remaining := cage.Target - sumPlaced
		return remaining >= unfilled && remaining <= unfilled*size
	case domain.OpMultiply:
		if product == 0 || cage.Target%product != 0 {
			return false
		}
		return !complete || product == cage.Target
	case domain.OpSubtract:
		if !complete {
			return true
		}
		a, b := grid[cage.Cells[0].Row][cage.Cells[0].Col], grid[cage.Cells[1].Row][cage.Cells[1].Col]
		if a < b {
			a, b = b, a
		}
		return a-b == cage.Target
	case domain.OpDivide:
		if !complete {
			return true
		}
		a, b := grid[cage.Cells[0].Row][cage.Cells[0].Col], grid[cage.Cells[1].Row][cage.Cells[1].Col]
		if a < b {
			a, b = b, a
		}
		return a%b == 0 && a/b == cage.Target
	}
	return false
}

func copyGrid(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for r, row := range grid {
		out[r] = append([]int(nil), row...)
	}
	return out
}
