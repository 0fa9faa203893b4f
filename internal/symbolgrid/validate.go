package symbolgrid

import (
	"fmt"

	"svw.info/worksheets/internal/domain"
)

// ValidateParams rejects structurally infeasible configurations before
// any randomized work happens. All failures wrap domain.ErrInvalidParameter.
func ValidateParams(p domain.SymbolParams) error {
	if p.GridSize < 1 {
		return fmt.Errorf("%w: grid_size must be >= 1", domain.ErrInvalidParameter)
	}
	if p.NumSymbols < 2 {
		return fmt.Errorf("%w: num_symbols must be >= 2", domain.ErrInvalidParameter)
	}
	if p.NumSymbols > 2*p.GridSize {
		return fmt.Errorf("%w: num_symbols (%d) exceeds max equations (2 * %d)",
			domain.ErrInvalidParameter, p.NumSymbols, p.GridSize)
	}
	if p.NumSymbols > p.GridSize*p.GridSize {
		return fmt.Errorf("%w: num_symbols (%d) exceeds grid cells (%d)",
			domain.ErrInvalidParameter, p.NumSymbols, p.GridSize*p.GridSize)
	}
	rangeSize := p.ValueMax - p.ValueMin + 1
	if rangeSize < 2 {
		return fmt.Errorf("%w: value range must contain at least 2 values", domain.ErrInvalidParameter)
	}
	if p.DistinctValues && rangeSize < p.NumSymbols {
		return fmt.Errorf("%w: value range [%d, %d] too small for %d distinct values",
			domain.ErrInvalidParameter, p.ValueMin, p.ValueMax, p.NumSymbols)
	}
	if p.HintFraction < 0.0 || p.HintFraction > 1.0 {
		return fmt.Errorf("%w: hint_fraction must be in [0.0, 1.0]", domain.ErrInvalidParameter)
	}
	return nil
}
