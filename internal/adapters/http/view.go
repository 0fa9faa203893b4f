package httpadapter

import (
	"fmt"

	"svw.info/worksheets/internal/domain"
)

// HintLookup maps row/column index to the revealed total, for worksheet
// rendering; indices without a hint stay absent.
type HintLookup struct {
	Row map[int]int
	Col map[int]int
}

func buildHintLookup(p *domain.SymbolPuzzle) HintLookup {
	lookup := HintLookup{Row: map[int]int{}, Col: map[int]int{}}
	for _, h := range p.Hints {
		if h.Axis == domain.AxisRow {
			lookup.Row[h.Index] = h.Total
		} else {
			lookup.Col[h.Index] = h.Total
		}
	}
	return lookup
}

// borderSides marks which sides of a cell lie on a cage boundary.
type borderSides struct {
	Top, Right, Bottom, Left bool
}

// buildCageBorders computes, for every cell, the sides where the
// neighboring cell belongs to a different cage (or the grid edge).
func buildCageBorders(p *domain.KenKenPuzzle) [][]borderSides {
	size := p.Size
	cageOf := make(map[domain.CellCoord]int, size*size)
	for i, cage := range p.Cages {
		for _, cell := range cage.Cells {
			cageOf[cell] = i
		}
	}

	borders := make([][]borderSides, size)
	for r := range borders {
		borders[r] = make([]borderSides, size)
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			id := cageOf[domain.CellCoord{Row: r, Col: c}]
			b := &borders[r][c]
			b.Top = r == 0 || cageOf[domain.CellCoord{Row: r - 1, Col: c}] != id
			b.Bottom = r == size-1 || cageOf[domain.CellCoord{Row: r + 1, Col: c}] != id
			b.Left = c == 0 || cageOf[domain.CellCoord{Row: r, Col: c - 1}] != id
			b.Right = c == size-1 || cageOf[domain.CellCoord{Row: r, Col: c + 1}] != id
		}
	}
	return borders
}

// buildCageLabels maps the top-left cell of each cage to its printed
// label, e.g. "12+" or a bare target for singleton cages.
func buildCageLabels(p *domain.KenKenPuzzle) map[domain.CellCoord]string {
	labels := make(map[domain.CellCoord]string, len(p.Cages))
	for _, cage := range p.Cages {
		topLeft := cage.Cells[0]
		for _, cell := range cage.Cells[1:] {
			if cell.Row < topLeft.Row || (cell.Row == topLeft.Row && cell.Col < topLeft.Col) {
				topLeft = cell
			}
		}
		if cage.Operation != domain.OpNone {
			labels[topLeft] = fmt.Sprintf("%d%s", cage.Target, cage.Operation)
		} else {
			labels[topLeft] = fmt.Sprintf("%d", cage.Target)
		}
	}
	return labels
}
