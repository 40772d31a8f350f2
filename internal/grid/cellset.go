// internal/grid/cellset.go
package grid

import (
	"go-tower-grid/pkg/tilemap"
	"sort"
)

// CellSet is an unordered set of tiles.
type CellSet map[tilemap.Cell]struct{}

func NewCellSet(cells ...tilemap.Cell) CellSet {
	s := make(CellSet, len(cells))
	s.Add(cells...)
	return s
}

func (s CellSet) Add(cells ...tilemap.Cell) {
	for _, c := range cells {
		s[c] = struct{}{}
	}
}

func (s CellSet) Has(c tilemap.Cell) bool {
	_, ok := s[c]
	return ok
}

// Union adds every tile of other.
func (s CellSet) Union(other CellSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Subtract removes every tile of other.
func (s CellSet) Subtract(other CellSet) {
	for c := range other {
		delete(s, c)
	}
}

func (s CellSet) Clear() {
	for c := range s {
		delete(s, c)
	}
}

func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same tiles.
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the tiles ordered by x, then y.
func (s CellSet) Sorted() []tilemap.Cell {
	out := make([]tilemap.Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
