package symbolgrid

import "svw.info/worksheets/internal/domain"

// buildCoefficientMatrix builds one equation per row sum and per column
// sum: entry [e][s] is the count of symbol s along equation e. Row
// equations come first (indices 0..N-1), then column equations (N..2N-1).
func buildCoefficientMatrix(grid [][]int, numSymbols int) [][]int {
	gridSize := len(grid)
	matrix := make([][]int, 2*gridSize)
	for i := range matrix {
		matrix[i] = make([]int, numSymbols)
	}
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			sym := grid[r][c]
			matrix[r][sym]++
			matrix[gridSize+c][sym]++
		}
	}
	return matrix
}

// subMatrix selects the given equation rows from the full matrix.
func subMatrix(matrix [][]int, rows []int) [][]int {
	sub := make([][]int, len(rows))
	for i, r := range rows {
		sub[i] = matrix[r]
	}
	return sub
}

// allSums computes every row and column sum in equation-index order.
func allSums(grid [][]int, symbolValues []int) []domain.Hint {
	gridSize := len(grid)
	sums := make([]domain.Hint, 0, 2*gridSize)
	for r := 0; r < gridSize; r++ {
		total := 0
		for c := 0; c < gridSize; c++ {
			total += symbolValues[grid[r][c]]
		}
		sums = append(sums, domain.Hint{Axis: domain.AxisRow, Index: r, Total: total})
	}
	for c := 0; c < gridSize; c++ {
		total := 0
		for r := 0; r < gridSize; r++ {
			total += symbolValues[grid[r][c]]
		}
		sums = append(sums, domain.Hint{Axis: domain.AxisCol, Index: c, Total: total})
	}
	return sums
}
