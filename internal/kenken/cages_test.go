package kenken

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/worksheets/internal/domain"
)

func TestPartitionCoversGridExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	cages := PartitionIntoCages(rng, 4, 3)
	seen := make(map[domain.CellCoord]bool)
	for _, cage := range cages {
		for _, cell := range cage {
			require.False(t, seen[cell], "cell %v assigned twice", cell)
			seen[cell] = true
		}
	}
	require.Len(t, seen, 16)
}

func TestPartitionRespectsMaxCageSize(t *testing.T) {
	for _, maxSize := range []int{1, 2, 3, 4} {
		t.Run(fmt.Sprintf("max%d", maxSize), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(maxSize)))
			for _, cage := range PartitionIntoCages(rng, 5, maxSize) {
				require.LessOrEqual(t, len(cage), maxSize)
				require.GreaterOrEqual(t, len(cage), 1)
			}
		})
	}
}

func TestPartitionCagesAreConnected(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, cage := range PartitionIntoCages(rng, 5, 4) {
		if len(cage) <= 1 {
			continue
		}
		inCage := make(map[domain.CellCoord]bool, len(cage))
		for _, cell := range cage {
			inCage[cell] = true
		}
		// Flood fill from the first cell must reach every cell.
		visited := map[domain.CellCoord]bool{cage[0]: true}
		frontier := []domain.CellCoord{cage[0]}
		for len(frontier) > 0 {
			cur := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			for _, d := range [4]domain.CellCoord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
				nb := domain.CellCoord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
				if inCage[nb] && !visited[nb] {
					visited[nb] = true
					frontier = append(frontier, nb)
				}
			}
		}
		require.Len(t, visited, len(cage), "cage %v not connected", cage)
	}
}

func TestPartitionProducesMultiCellCages(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	multi := 0
	for _, cage := range PartitionIntoCages(rng, 4, 3) {
		if len(cage) > 1 {
			multi++
		}
	}
	require.Greater(t, multi, 0)
}
