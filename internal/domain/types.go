package domain

// Hint is a revealed row or column sum in a symbol-grid puzzle.
type Hint struct {
	Axis  Axis `json:"axis"`
	Index int  `json:"index"`
	Total int  `json:"total"`
}

// SymbolPuzzle is a generated symbol-sum grid puzzle.
// Grid entries are symbol indices in [0, NumSymbols); SymbolValues maps
// each symbol index to its numeric value. The hint subset is always
// sufficient to recover all symbol values.
type SymbolPuzzle struct {
	Grid         [][]int `json:"grid"`
	SymbolValues []int   `json:"symbolValues"`
	Hints        []Hint  `json:"hints"`
	NumSymbols   int     `json:"numSymbols"`
	ValueMin     int     `json:"valueMin"`
	ValueMax     int     `json:"valueMax"`
}

// GridSize returns the edge length of the puzzle grid.
func (p *SymbolPuzzle) GridSize() int { return len(p.Grid) }

// CellCoord identifies a cell on a grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cage is a connected group of cells sharing one arithmetic constraint.
// Operation is empty for single-cell cages, where Target is simply the
// cell's value.
type Cage struct {
	Cells     []CellCoord `json:"cells"`
	Target    int         `json:"target"`
	Operation Operation   `json:"operation"`
}

// KenKenPuzzle is a Latin-square puzzle partitioned into arithmetic cages.
// Cages are disjoint, orthogonally connected, and cover the whole grid.
type KenKenPuzzle struct {
	Size     int     `json:"size"`
	Solution [][]int `json:"solution"`
	Cages    []Cage  `json:"cages"`
}
