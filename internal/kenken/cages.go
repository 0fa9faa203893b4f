package kenken

import (
	"math/rand"

	"svw.info/worksheets/internal/domain"
)

// PartitionIntoCages splits the grid into connected regions by random
// region growing: cells are visited in shuffled order, each unassigned
// cell seeds a cage with a random target size in [1, maxCageSize], and
// the cage grows by absorbing a uniformly random unassigned orthogonal
// neighbor of any cage cell until the target is met or no neighbor is
// left. Full coverage, disjointness, connectivity, and the size cap all
// hold by construction.
func PartitionIntoCages(rng *rand.Rand, size, maxCageSize int) [][]domain.CellCoord {
	order := make([]domain.CellCoord, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			order = append(order, domain.CellCoord{Row: r, Col: c})
		}
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	assigned := make([][]bool, size)
	for r := range assigned {
		assigned[r] = make([]bool, size)
	}

	var cages [][]domain.CellCoord
	for _, seed := range order {
		if assigned[seed.Row][seed.Col] {
			continue
		}
		targetSize := 1 + rng.Intn(maxCageSize)
		cage := []domain.CellCoord{seed}
		assigned[seed.Row][seed.Col] = true

		for len(cage) < targetSize {
			candidates := openNeighbors(cage, assigned, size)
			if len(candidates) == 0 {
				break
			}
			pick := candidates[rng.Intn(len(candidates))]
			cage = append(cage, pick)
			assigned[pick.Row][pick.Col] = true
		}
		cages = append(cages, cage)
	}
	return cages
}

// openNeighbors collects the unassigned orthogonal neighbors of all cage
// cells, deduplicated.
func openNeighbors(cage []domain.CellCoord, assigned [][]bool, size int) []domain.CellCoord {
	seen := make(map[domain.CellCoord]bool)
	var out []domain.CellCoord
	for _, cell := range cage {
		for _, d := range [4]domain.CellCoord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
			nb := domain.CellCoord{Row: cell.Row + d.Row, Col: cell.Col + d.Col}
			if nb.Row < 0 || nb.Row >= size || nb.Col < 0 || nb.Col >= size {
				continue
			}
			if assigned[nb.Row][nb.Col] || seen[nb] {
				continue
			}
			seen[nb] = true
			out = append(out, nb)
		}
	}
	return out
}
