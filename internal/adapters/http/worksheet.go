package httpadapter

import (
	"strconv"

	"svw.info/worksheets/internal/config"
	"svw.info/worksheets/internal/domain"
)

// symbolCell is one rendered cell of a symbol-grid worksheet.
type symbolCell struct {
	Symbol string
	Color  string
}

// symbolView is the render model for one symbol-grid puzzle.
type symbolView struct {
	Puzzle   *domain.SymbolPuzzle
	Cells    [][]symbolCell
	RowHints []string // one per row, empty when the sum is hidden
	ColHints []string
	Legend   []legendEntry
}

// legendEntry pairs a symbol with its color and, on answer keys, its value.
type legendEntry struct {
	Symbol string
	Color  string
	Value  int
}

func buildSymbolView(p *domain.SymbolPuzzle) symbolView {
	lookup := buildHintLookup(p)
	size := p.GridSize()

	cells := make([][]symbolCell, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]symbolCell, size)
		for c := 0; c < size; c++ {
			sym := p.Grid[r][c]
			cells[r][c] = symbolCell{Symbol: config.Symbols[sym], Color: config.SymbolColors[sym]}
		}
	}

	rowHints := make([]string, size)
	colHints := make([]string, size)
	for i := 0; i < size; i++ {
		if total, ok := lookup.Row[i]; ok {
			rowHints[i] = strconv.Itoa(total)
		}
		if total, ok := lookup.Col[i]; ok {
			colHints[i] = strconv.Itoa(total)
		}
	}

	legend := make([]legendEntry, p.NumSymbols)
	for s := 0; s < p.NumSymbols; s++ {
		legend[s] = legendEntry{Symbol: config.Symbols[s], Color: config.SymbolColors[s], Value: p.SymbolValues[s]}
	}

	return symbolView{Puzzle: p, Cells: cells, RowHints: rowHints, ColHints: colHints, Legend: legend}
}

// kenkenCell is one rendered cell of a KenKen worksheet.
type kenkenCell struct {
	Value  int
	Label  string
	Border borderSides
}

// kenkenView is the render model for one KenKen puzzle.
type kenkenView struct {
	Puzzle *domain.KenKenPuzzle
	Cells  [][]kenkenCell
}

func buildKenKenView(p *domain.KenKenPuzzle) kenkenView {
	borders := buildCageBorders(p)
	labels := buildCageLabels(p)

	cells := make([][]kenkenCell, p.Size)
	for r := 0; r < p.Size; r++ {
		cells[r] = make([]kenkenCell, p.Size)
		for c := 0; c < p.Size; c++ {
			cells[r][c] = kenkenCell{
				Value:  p.Solution[r][c],
				Label:  labels[domain.CellCoord{Row: r, Col: c}],
				Border: borders[r][c],
			}
		}
	}
	return kenkenView{Puzzle: p, Cells: cells}
}
