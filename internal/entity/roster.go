// internal/entity/roster.go
package entity

import (
	"go-tower-grid/internal/component"
	"go-tower-grid/internal/defs"
	"go-tower-grid/internal/types"
	"go-tower-grid/pkg/tilemap"
)

// Roster owns the live buildings of a level. Iteration follows creation order.
type Roster struct {
	NextID    types.EntityID
	buildings []*component.Building
}

func NewRoster() *Roster {
	return &Roster{NextID: 1}
}

func (r *Roster) NewEntity() types.EntityID {
	id := r.NextID
	r.NextID++
	return id
}

// Spawn creates a building rooted at root.
func (r *Roster) Spawn(def *defs.BuildingDefinition, root tilemap.Cell) *component.Building {
	b := &component.Building{
		ID:   r.NewEntity(),
		Def:  def,
		Root: root,
	}
	r.buildings = append(r.buildings, b)
	return b
}

// Remove drops the building with the given id. Returns false if it was not live.
func (r *Roster) Remove(id types.EntityID) bool {
	for i, b := range r.buildings {
		if b.ID == id {
			r.buildings = append(r.buildings[:i:i], r.buildings[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a live building by id.
func (r *Roster) Get(id types.EntityID) (*component.Building, bool) {
	for _, b := range r.buildings {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Live returns a snapshot of the live buildings.
func (r *Roster) Live() []*component.Building {
	out := make([]*component.Building, len(r.buildings))
	copy(out, r.buildings)
	return out
}

// Len returns the number of live buildings.
func (r *Roster) Len() int {
	return len(r.buildings)
}

// FindAt returns the first live building whose footprint contains cell and
// which passes filter (nil accepts all).
func (r *Roster) FindAt(c tilemap.Cell, filter func(*component.Building) bool) *component.Building {
	for _, b := range r.buildings {
		if !b.ContainsCell(c) {
			continue
		}
		if filter == nil || filter(b) {
			return b
		}
	}
	return nil
}
