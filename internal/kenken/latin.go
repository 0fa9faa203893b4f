package kenken

import (
	"fmt"
	"math/rand"

	"svw.info/worksheets/internal/domain"
)

// latinSquareRestarts bounds the from-scratch retries of the row-by-row
// construction before giving up.
const latinSquareRestarts = 100

// GenerateLatinSquare produces a random Latin square with values
// 1..size. Rows are built one at a time: the candidate order is
// shuffled, a column-by-column backtracking search finds a row
// permutation consistent with the columns so far, and a dead end
// backtracks to the previous row.
func GenerateLatinSquare(rng *rand.Rand, size int) ([][]int, error) {
	for restart := 0; restart < latinSquareRestarts; restart++ {
		grid := make([][]int, 0, size)
		if fillRows(rng, &grid, size) {
			return grid, nil
		}
	}
	return nil, fmt.Errorf("%w: could not build a %d×%d latin square", domain.ErrGenerationExhausted, size, size)
}

func fillRows(rng *rand.Rand, grid *[][]int, size int) bool {
	if len(*grid) == size {
		return true
	}
	candidates := make([]int, size)
	for i := range candidates {
		candidates[i] = i + 1
	}
	rng.Shuffle(size, func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	row, ok := findValidRow(*grid, size, candidates)
	if !ok {
		return false
	}
	*grid = append(*grid, row)
	if fillRows(rng, grid, size) {
		return true
	}
	*grid = (*grid)[:len(*grid)-1]
	return false
}

// findValidRow searches for a permutation of values usable as the next
// row, honoring values already used in each column.
func findValidRow(grid [][]int, size int, values []int) ([]int, bool) {
	usedInCol := make([]map[int]bool, size)
	for c := 0; c < size; c++ {
		usedInCol[c] = make(map[int]bool, len(grid))
		for _, row := range grid {
			usedInCol[c][row[c]] = true
		}
	}

	result := make([]int, 0, size)
	usedInRow := make(map[int]bool, size)

	var bt func(col int) bool
	bt = func(col int) bool {
		if col == size {
			return true
		}
		for _, v := range values {
			if usedInRow[v] || usedInCol[col][v] {
				continue
			}
			result = append(result, v)
			usedInRow[v] = true
			usedInCol[col][v] = true
			if bt(col + 1) {
				return true
			}
			result = result[:len(result)-1]
			delete(usedInRow, v)
			delete(usedInCol[col], v)
		}
		return false
	}

	if bt(0) {
		return result, true
	}
	return nil, false
}
