package kenken

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/worksheets/internal/domain"
)

var opsGrid = [][]int{
	{1, 2, 3},
	{2, 3, 1},
	{3, 1, 2},
}

func pairCage() [][]domain.CellCoord {
	return [][]domain.CellCoord{{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}
}

func TestAssignSingleCellCage(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cages := AssignCageOperations(rng, opsGrid, [][]domain.CellCoord{{{Row: 0, Col: 0}}}, []domain.Operation{domain.OpAdd})
	require.Equal(t, domain.OpNone, cages[0].Operation)
	require.Equal(t, 1, cages[0].Target)
}

func TestAssignTwoCellOperations(t *testing.T) {
	cases := []struct {
		name    string
		allowed []domain.Operation
		wantOp  domain.Operation
		want    int
	}{
		{"addition", []domain.Operation{domain.OpAdd}, domain.OpAdd, 3},
		{"subtraction", []domain.Operation{domain.OpSubtract}, domain.OpSubtract, 1},
		{"multiplication", []domain.Operation{domain.OpMultiply}, domain.OpMultiply, 2},
		{"division", []domain.Operation{domain.OpDivide}, domain.OpDivide, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			cages := AssignCageOperations(rng, opsGrid, pairCage(), tc.allowed)
			require.Equal(t, tc.wantOp, cages[0].Operation)
			require.Equal(t, tc.want, cages[0].Target)
		})
	}
}

func TestAssignLargeCageRestrictedToAddMultiply(t *testing.T) {
	all := []domain.Operation{domain.OpAdd, domain.OpSubtract, domain.OpMultiply, domain.OpDivide}
	cells := [][]domain.CellCoord{{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}}
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		cages := AssignCageOperations(rng, opsGrid, cells, all)
		require.Contains(t, []domain.Operation{domain.OpAdd, domain.OpMultiply}, cages[0].Operation)
	}
}

func TestAssignDivisionFallsBackWhenNotDivisible(t *testing.T) {
	grid := [][]int{{2, 3}, {3, 2}}
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		cages := AssignCageOperations(rng, grid, pairCage(), []domain.Operation{domain.OpDivide})
		require.NotEqual(t, domain.OpDivide, cages[0].Operation)
		// Fallback is addition with the plain sum.
		require.Equal(t, domain.OpAdd, cages[0].Operation)
		require.Equal(t, 5, cages[0].Target)
	}
}

func TestAssignPreservesCageCells(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	cells := [][]domain.CellCoord{{{Row: 1, Col: 0}, {Row: 1, Col: 1}}}
	cages := AssignCageOperations(rng, opsGrid, cells, []domain.Operation{domain.OpAdd})
	require.Equal(t, cells[0], cages[0].Cells)
}
