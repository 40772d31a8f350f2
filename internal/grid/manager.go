// internal/grid/manager.go
package grid

import (
	"go-tower-grid/internal/component"
	"go-tower-grid/internal/event"
	"go-tower-grid/pkg/tilemap"
)

// Metadata is the per-tile flag lookup the grid consumes. Layers must be in
// lookup priority order.
type Metadata interface {
	Layers() []*tilemap.Node
	Lookup(layer *tilemap.Node, c tilemap.Cell) (tilemap.Flags, bool)
}

// BuildingSource lists live buildings in a stable order.
type BuildingSource interface {
	Live() []*component.Building
}

// Manager owns the derived tile sets of a level.
//
// Placements are applied incrementally. Removal rebuilds everything from the
// live buildings: overlapping radii are not reference counted, so a tile
// cannot be dropped safely when one of its covering buildings goes away.
type Manager struct {
	meta       Metadata
	elevation  *ElevationResolver
	buildings  BuildingSource
	dispatcher *event.Dispatcher

	occupied  CellSet
	buildable CellSet
	dangerous CellSet // клетки в радиусе гоблинов
	inRadius  CellSet // все клетки в радиусе строительства, без фильтра
	collected CellSet // собранные клетки ресурсов
}

// State is a copy of the derived sets.
type State struct {
	Occupied  CellSet
	Buildable CellSet
	Dangerous CellSet
	InRadius  CellSet
	Collected CellSet
}

func NewManager(meta Metadata, elevation *ElevationResolver, buildings BuildingSource, dispatcher *event.Dispatcher) *Manager {
	if meta == nil || buildings == nil || dispatcher == nil {
		panic("grid: metadata, buildings and dispatcher are required")
	}
	if elevation == nil {
		elevation = NewElevationResolver(nil)
	}
	m := &Manager{
		meta:       meta,
		elevation:  elevation,
		buildings:  buildings,
		dispatcher: dispatcher,
		occupied:   NewCellSet(),
		buildable:  NewCellSet(),
		dangerous:  NewCellSet(),
		inRadius:   NewCellSet(),
		collected:  NewCellSet(),
	}
	dispatcher.Subscribe(event.BuildingPlaced, m)
	dispatcher.Subscribe(event.BuildingDestroyed, m)
	return m
}

// OnEvent keeps the sets in step with building lifecycle events.
func (m *Manager) OnEvent(e event.Event) {
	b, ok := e.Data.(*component.Building)
	if !ok || b == nil {
		return
	}
	switch e.Type {
	case event.BuildingPlaced:
		m.RegisterPlacement(b)
	case event.BuildingDestroyed:
		m.UnregisterPlacement(b)
	}
}

// TileFlag returns the first layer that answers for c and its flag value.
// Layers without the tile, or with the tile marked ignored, are skipped.
func (m *Manager) TileFlag(c tilemap.Cell, name string) (*tilemap.Node, bool) {
	for _, layer := range m.meta.Layers() {
		flags, ok := m.meta.Lookup(layer, c)
		if !ok || flags.Get(tilemap.FlagIgnored) {
			continue
		}
		return layer, flags.Get(name)
	}
	return nil, false
}

// IsCellBuildable reports membership in the buildable set.
func (m *Manager) IsCellBuildable(c tilemap.Cell) bool {
	return m.buildable.Has(c)
}

// IsAreaBuildable reports whether a footprint may be placed on area. Every
// tile must be flagged buildable, be in the buildable set and share the
// elevation group of the first tile.
func (m *Manager) IsAreaBuildable(area tilemap.Area) bool {
	cells := area.Cells()
	if len(cells) == 0 {
		return false
	}

	firstLayer, _ := m.TileFlag(cells[0], tilemap.FlagBuildable)
	target := m.elevation.Group(firstLayer)

	for _, c := range cells {
		layer, isBuildable := m.TileFlag(c, tilemap.FlagBuildable)
		if !isBuildable || !m.buildable.Has(c) || m.elevation.Group(layer) != target {
			return false
		}
	}
	return true
}

// IsTileInAnyBuildingRadius reports whether c lies within the buildable
// radius of any live building, regardless of tile flags.
func (m *Manager) IsTileInAnyBuildingRadius(c tilemap.Cell) bool {
	return m.inRadius.Has(c)
}

// RegisterPlacement adds a new building to the derived sets.
func (m *Manager) RegisterPlacement(b *component.Building) {
	if m.apply(b) {
		m.emitResourceCount()
	}
	m.dispatcher.Dispatch(event.Event{Type: event.GridStateChanged})
}

// UnregisterPlacement rebuilds the sets from every live building except b.
func (m *Manager) UnregisterPlacement(b *component.Building) {
	m.recalculate(b)
	m.emitResourceCount()
	m.dispatcher.Dispatch(event.Event{Type: event.GridStateChanged})
}

// apply - порядок важен: опасные клетки считаются до того, как вычитаются
// из доступных для строительства. Returns true if the collected resource
// count changed.
func (m *Manager) apply(b *component.Building) bool {
	area := b.Area()
	def := b.Def

	m.occupied.Add(area.Cells()...)

	if def.DangerRadius > 0 {
		danger := NewCellSet(m.buildableTilesInRadius(area, def.DangerRadius)...)
		danger.Subtract(m.occupied)
		m.dangerous.Union(danger)
	}

	m.inRadius.Add(TilesInRadius(area, def.BuildableRadius, AnyCell)...)

	m.buildable.Add(m.buildableTilesInRadius(area, def.BuildableRadius)...)
	m.buildable.Subtract(m.occupied)
	m.buildable.Subtract(m.dangerous)

	before := len(m.collected)
	m.collected.Add(m.resourceTilesInRadius(area, def.ResourceRadius)...)
	return len(m.collected) != before
}

func (m *Manager) recalculate(skip *component.Building) {
	m.occupied.Clear()
	m.buildable.Clear()
	m.dangerous.Clear()
	m.inRadius.Clear()
	m.collected.Clear()

	for _, b := range m.buildings.Live() {
		if skip != nil && b.ID == skip.ID {
			continue
		}
		m.apply(b)
	}
}

func (m *Manager) emitResourceCount() {
	m.dispatcher.Dispatch(event.Event{Type: event.ResourceTilesChanged, Data: len(m.collected)})
}

func (m *Manager) buildableTilesInRadius(area tilemap.Area, radius int) []tilemap.Cell {
	return TilesInRadius(area, radius, func(c tilemap.Cell) bool {
		_, isBuildable := m.TileFlag(c, tilemap.FlagBuildable)
		return isBuildable
	})
}

func (m *Manager) resourceTilesInRadius(area tilemap.Area, radius int) []tilemap.Cell {
	return TilesInRadius(area, radius, func(c tilemap.Cell) bool {
		_, isWood := m.TileFlag(c, tilemap.FlagWood)
		return isWood
	})
}

// BuildableCells returns the tiles open for new placements.
func (m *Manager) BuildableCells() CellSet {
	return m.buildable.Clone()
}

// DangerCells returns the tiles blocked by hostile buildings.
func (m *Manager) DangerCells() CellSet {
	return m.dangerous.Clone()
}

// ExpandedBuildableCells previews the tiles a building at area would open up.
func (m *Manager) ExpandedBuildableCells(area tilemap.Area, radius int) CellSet {
	expanded := NewCellSet(m.buildableTilesInRadius(area, radius)...)
	expanded.Subtract(m.buildable)
	expanded.Subtract(m.occupied)
	expanded.Subtract(m.dangerous)
	return expanded
}

// ResourceCellsInRadius previews the resource tiles a building at area would
// collect.
func (m *Manager) ResourceCellsInRadius(area tilemap.Area, radius int) CellSet {
	return NewCellSet(m.resourceTilesInRadius(area, radius)...)
}

// ResourceTileCount returns the number of collected resource tiles.
func (m *Manager) ResourceTileCount() int {
	return len(m.collected)
}

// Snapshot copies every derived set.
func (m *Manager) Snapshot() State {
	return State{
		Occupied:  m.occupied.Clone(),
		Buildable: m.buildable.Clone(),
		Dangerous: m.dangerous.Clone(),
		InRadius:  m.inRadius.Clone(),
		Collected: m.collected.Clone(),
	}
}
