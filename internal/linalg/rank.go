// Package linalg provides exact rank computation for small integer
// matrices. Entries in this system are symbol counts (small non-negative
// integers) and matrices are at most 2N×S for grid size N ≤ 9, so exact
// rational elimination is cheap and avoids the epsilon pitfalls of a
// floating-point rank.
package linalg

import "math/big"

// Rank returns the rank of an integer matrix via Gaussian elimination
// over exact rationals. An empty matrix has rank 0.
func Rank(m [][]int) int {
	rows := len(m)
	if rows == 0 {
		return 0
	}
	cols := len(m[0])

	work := make([][]*big.Rat, rows)
	for i, row := range m {
		work[i] = make([]*big.Rat, cols)
		for j, v := range row {
			work[i][j] = new(big.Rat).SetInt64(int64(v))
		}
	}

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		// Find a pivot row for this column.
		pivot := -1
		for r := rank; r < rows; r++ {
			if work[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]

		// Eliminate the column below the pivot.
		for r := rank + 1; r < rows; r++ {
			if work[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Quo(work[r][col], work[rank][col])
			for c := col; c < cols; c++ {
				scaled := new(big.Rat).Mul(factor, work[rank][c])
				work[r][c].Sub(work[r][c], scaled)
			}
		}
		rank++
	}
	return rank
}

// HasFullRank reports whether the matrix has rank at least unknowns,
// i.e. whether its equations uniquely determine that many unknowns.
// Fewer equations than unknowns is always insufficient.
func HasFullRank(m [][]int, unknowns int) bool {
	return Rank(m) >= unknowns
}
