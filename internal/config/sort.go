package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

// InitialSort resolves settings.sort to a column index, or nil.
func (d *Document) InitialSort() *table.SortSpec {
	s := d.Settings.Sort
	if s == nil {
		return nil
	}
	idx := d.ColumnIndex(s.Column)
	if idx < 0 {
		return nil
	}
	return &table.SortSpec{Column: idx, Ascending: s.IsAscending()}
}

// SortRows reorders d.Rows by spec and returns the permutation applied, where
// perm[newIndex] = oldIndex.
func (d *Document) SortRows(spec table.SortSpec) []int {
	perm := d.SortPermutation(spec)
	d.Reorder(perm)
	return perm
}

// SortPermutation computes the row order for spec without changing d. Rows
// only move inside segments bounded by group starts and ends, so every group
// keeps its members. The sort is stable.
func (d *Document) SortPermutation(spec table.SortSpec) []int {
	n := len(d.Rows)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if spec.Column < 0 || spec.Column >= len(d.Columns) {
		return perm
	}

	numeric := d.Columns[spec.Column].Numeric
	cmp := func(a, b int) int {
		c := CompareCells(d.cell(a, spec.Column), d.cell(b, spec.Column), numeric)
		if !spec.Ascending {
			c = -c
		}
		return c
	}

	bounds := segmentBounds(d.Groups, n)
	for i := 0; i+1 < len(bounds); i++ {
		slices.SortStableFunc(perm[bounds[i]:bounds[i+1]], cmp)
	}
	return perm
}

// Reorder rearranges d.Rows so that row perm[i] ends up at position i.
func (d *Document) Reorder(perm []int) {
	rows := make([]RowSpec, len(perm))
	for next, old := range perm {
		rows[next] = d.Rows[old]
	}
	d.Rows = rows
}

func (d *Document) cell(row, column int) string {
	cells := d.Rows[row].Cells
	if column < len(cells) {
		return cells[column]
	}
	return ""
}

// segmentBounds returns the sorted, de-duplicated cut points of [0, n).
func segmentBounds(groups []GroupSpec, n int) []int {
	cuts := []int{0, n}
	for _, g := range groups {
		if s := max(g.Start, 0); s < n {
			cuts = append(cuts, s)
		}
		if e := g.End + 1; e > 0 && e < n {
			cuts = append(cuts, e)
		}
	}
	slices.Sort(cuts)
	return slices.Compact(cuts)
}

// CompareCells orders two numbers numerically and anything else
// case-insensitively. In numeric columns numbers sort before text. Empty
// cells compare greater than anything else.
func CompareCells(a, b string, numeric bool) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	fa, aok := parseNumber(a)
	fb, bok := parseNumber(b)
	switch {
	case aok && bok:
		if fa < fb {
			return -1
		}
		if fa > fb {
			return 1
		}
		return 0
	case numeric && aok:
		return -1
	case numeric && bok:
		return 1
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
