package domain

// SymbolParams configures symbol-grid puzzle generation.
// MaxRetries of 0 selects the generator's default budget.
type SymbolParams struct {
	GridSize       int     `json:"gridSize" yaml:"grid_size"`
	NumSymbols     int     `json:"numSymbols" yaml:"num_symbols"`
	ValueMin       int     `json:"valueMin" yaml:"value_min"`
	ValueMax       int     `json:"valueMax" yaml:"value_max"`
	HintFraction   float64 `json:"hintFraction" yaml:"hint_fraction"`
	DistinctValues bool    `json:"distinctValues" yaml:"distinct_values"`
	MaxRetries     int     `json:"maxRetries,omitempty" yaml:"max_retries,omitempty"`
}

// KenKenSpec configures KenKen puzzle generation.
// MaxRetries of 0 selects the generator's default budget.
type KenKenSpec struct {
	Size              int         `json:"size" yaml:"size"`
	MaxCageSize       int         `json:"maxCageSize" yaml:"max_cage_size"`
	AllowedOperations []Operation `json:"allowedOperations" yaml:"operations"`
	MaxRetries        int         `json:"maxRetries,omitempty" yaml:"max_retries,omitempty"`
}
