package validator

import (
	"context"

	"svw.info/worksheets/internal/domain"
)

// FastValidator scans a partially filled grid for Latin-square conflicts
// (duplicate values in a row or column). Zero marks an empty cell.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, size int, grid [][]int) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < size; r++ {
		seen := make([]bool, size+1)
		for c := 0; c < size; c++ {
			val := grid[r][c]
			if val < 1 || val > size {
				continue
			}
			if seen[val] {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen[val] = true
		}
	}
	// cols
	for c := 0; c < size; c++ {
		seen := make([]bool, size+1)
		for r := 0; r < size; r++ {
			val := grid[r][c]
			if val < 1 || val > size {
				continue
			}
			if seen[val] {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen[val] = true
		}
	}
	return len(conf) == 0, conf, nil
}
