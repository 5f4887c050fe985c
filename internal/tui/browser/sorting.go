package browser

import (
	"slices"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

// nextSort applies the header toggle policy: a new column sorts ascending,
// the current column flips direction.
func nextSort(current *table.SortSpec, column int) *table.SortSpec {
	if current != nil && current.Column == column {
		return &table.SortSpec{Column: column, Ascending: !current.Ascending}
	}
	return &table.SortSpec{Column: column, Ascending: true}
}

// remapIndices translates old row indices through perm, where
// perm[newIndex] = oldIndex. Indices outside the permutation are dropped.
func remapIndices(indices []int, perm []int) []int {
	inverse := make(map[int]int, len(perm))
	for next, old := range perm {
		inverse[old] = next
	}
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if next, ok := inverse[i]; ok {
			out = append(out, next)
		}
	}
	slices.Sort(out)
	return out
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func below(indices []int, n int) []int {
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < n {
			out = append(out, i)
		}
	}
	return out
}
