package symbolgrid

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/worksheets/internal/domain"
	"svw.info/worksheets/internal/linalg"
)

func TestValidateParams(t *testing.T) {
	valid := domain.SymbolParams{
		GridSize: 3, NumSymbols: 3, ValueMin: 1, ValueMax: 5,
		HintFraction: 1.0, DistinctValues: true,
	}
	require.NoError(t, ValidateParams(valid))

	cases := []struct {
		name   string
		mutate func(*domain.SymbolParams)
	}{
		{"too few symbols", func(p *domain.SymbolParams) { p.NumSymbols = 1 }},
		{"more symbols than equations", func(p *domain.SymbolParams) { p.NumSymbols = 7; p.ValueMax = 20 }},
		{"more symbols than cells", func(p *domain.SymbolParams) { p.GridSize = 1; p.NumSymbols = 2 }},
		{"degenerate value range", func(p *domain.SymbolParams) { p.ValueMin = 5; p.ValueMax = 5 }},
		{"range too small for distinct", func(p *domain.SymbolParams) { p.ValueMax = 2 }},
		{"hint fraction above 1", func(p *domain.SymbolParams) { p.HintFraction = 1.5 }},
		{"hint fraction below 0", func(p *domain.SymbolParams) { p.HintFraction = -0.1 }},
		{"zero grid size", func(p *domain.SymbolParams) { p.GridSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := ValidateParams(p)
			require.ErrorIs(t, err, domain.ErrInvalidParameter)
		})
	}
}

func TestGenerateRejectsInvalidParamsBeforeAnyWork(t *testing.T) {
	g := NewGenerator()
	p := domain.SymbolParams{GridSize: 3, NumSymbols: 1, ValueMin: 1, ValueMax: 5, HintFraction: 1.0}
	_, st, err := g.Generate(context.Background(), 1, p)
	require.ErrorIs(t, err, domain.ErrInvalidParameter)
	require.Zero(t, st.Attempts)
}

// Preset-shaped parameter sets from easy through expert.
var presetParams = []domain.SymbolParams{
	{GridSize: 3, NumSymbols: 3, ValueMin: 1, ValueMax: 5, HintFraction: 1.0, DistinctValues: true},
	{GridSize: 4, NumSymbols: 4, ValueMin: 1, ValueMax: 10, HintFraction: 0.75, DistinctValues: true},
	{GridSize: 5, NumSymbols: 6, ValueMin: 1, ValueMax: 15, HintFraction: 0.6},
	{GridSize: 5, NumSymbols: 7, ValueMin: 1, ValueMax: 20, HintFraction: 0.0},
	{GridSize: 3, NumSymbols: 2, ValueMin: 1, ValueMax: 5, HintFraction: 1.0, DistinctValues: true},
}

func TestGenerateProperties(t *testing.T) {
	g := NewGenerator()
	for i, p := range presetParams {
		p := p
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			puz, st, err := g.Generate(context.Background(), int64(42+i), p)
			require.NoError(t, err)
			require.GreaterOrEqual(t, st.Attempts, 1)

			require.Equal(t, p.GridSize, puz.GridSize())
			for _, row := range puz.Grid {
				require.Len(t, row, p.GridSize)
			}

			// Every symbol appears at least once.
			seen := make([]bool, p.NumSymbols)
			for _, row := range puz.Grid {
				for _, s := range row {
					require.GreaterOrEqual(t, s, 0)
					require.Less(t, s, p.NumSymbols)
					seen[s] = true
				}
			}
			for s, ok := range seen {
				require.True(t, ok, "symbol %d missing from grid", s)
			}

			// Values stay inside the configured range, distinct if asked.
			require.Len(t, puz.SymbolValues, p.NumSymbols)
			for _, v := range puz.SymbolValues {
				require.GreaterOrEqual(t, v, p.ValueMin)
				require.LessOrEqual(t, v, p.ValueMax)
			}
			if p.DistinctValues {
				require.Equal(t, p.NumSymbols, countDistinct(puz.SymbolValues))
			} else {
				require.GreaterOrEqual(t, countDistinct(puz.SymbolValues), 2)
			}

			// Every hint total matches the actual sum.
			for _, h := range puz.Hints {
				total := 0
				for i := 0; i < p.GridSize; i++ {
					if h.Axis == domain.AxisRow {
						total += puz.SymbolValues[puz.Grid[h.Index][i]]
					} else {
						total += puz.SymbolValues[puz.Grid[i][h.Index]]
					}
				}
				require.Equal(t, total, h.Total, "%s %d", h.Axis, h.Index)
			}

			// The revealed subset must determine all symbol values.
			requireHintsSolvable(t, puz)
		})
	}
}

func requireHintsSolvable(t *testing.T, puz *domain.SymbolPuzzle) {
	t.Helper()
	fullMatrix := buildCoefficientMatrix(puz.Grid, puz.NumSymbols)
	rows := make([]int, len(puz.Hints))
	for i, h := range puz.Hints {
		if h.Axis == domain.AxisRow {
			rows[i] = h.Index
		} else {
			rows[i] = puz.GridSize() + h.Index
		}
	}
	require.True(t, linalg.HasFullRank(subMatrix(fullMatrix, rows), puz.NumSymbols),
		"hint subset rank below %d", puz.NumSymbols)
}

func TestGenerateAllHintsWhenFractionIsOne(t *testing.T) {
	g := NewGenerator()
	p := domain.SymbolParams{GridSize: 3, NumSymbols: 3, ValueMin: 1, ValueMax: 5, HintFraction: 1.0, DistinctValues: true}
	puz, _, err := g.Generate(context.Background(), 7, p)
	require.NoError(t, err)
	require.Len(t, puz.Hints, 2*p.GridSize)
}

func TestGenerateMinimalHintsWhenFractionIsZero(t *testing.T) {
	g := NewGenerator()
	p := domain.SymbolParams{GridSize: 5, NumSymbols: 7, ValueMin: 1, ValueMax: 20, HintFraction: 0.0}
	puz, _, err := g.Generate(context.Background(), 99, p)
	require.NoError(t, err)
	require.LessOrEqual(t, len(puz.Hints), p.NumSymbols+2)
	requireHintsSolvable(t, puz)
}

func TestGenerateHintsSortedRowsBeforeCols(t *testing.T) {
	g := NewGenerator()
	p := domain.SymbolParams{GridSize: 4, NumSymbols: 4, ValueMin: 1, ValueMax: 10, HintFraction: 0.75, DistinctValues: true}
	puz, _, err := g.Generate(context.Background(), 3, p)
	require.NoError(t, err)
	prev := -1
	for _, h := range puz.Hints {
		eq := h.Index
		if h.Axis == domain.AxisCol {
			eq += p.GridSize
		}
		require.Greater(t, eq, prev, "hints out of equation order")
		prev = eq
	}
}

func TestCoefficientMatrix(t *testing.T) {
	grid := [][]int{{0, 0, 1}, {1, 1, 0}, {0, 1, 0}}
	m := buildCoefficientMatrix(grid, 2)
	require.Len(t, m, 6)
	require.Equal(t, 2, m[0][0])
	require.Equal(t, 1, m[0][1])
	// Column 0 holds symbols 0,1,0.
	require.Equal(t, 2, m[3][0])
	require.Equal(t, 1, m[3][1])
}
