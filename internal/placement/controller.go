// internal/placement/controller.go
package placement

import (
	"go-tower-grid/internal/component"
	"go-tower-grid/internal/defs"
	"go-tower-grid/internal/event"
	"go-tower-grid/internal/grid"
	"go-tower-grid/internal/types"
	"go-tower-grid/pkg/tilemap"
)

// Action is a discrete player input.
type Action int

const (
	ActionConfirm Action = iota + 1
	ActionCancel
	ActionRemove
)

// Mode - состояние контроллера.
type Mode int

const (
	ModeIdle Mode = iota
	ModePlacing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlacing:
		return "placing"
	default:
		return "unknown"
	}
}

// Grid is the part of the grid manager the controller needs.
type Grid interface {
	IsAreaBuildable(area tilemap.Area) bool
	BuildableCells() grid.CellSet
	DangerCells() grid.CellSet
	ExpandedBuildableCells(area tilemap.Area, radius int) grid.CellSet
	ResourceCellsInRadius(area tilemap.Area, radius int) grid.CellSet
}

// Wallet is the part of the ledger the controller needs.
type Wallet interface {
	Available() int
	Spend(cost int)
	Refund(cost int)
}

// Buildings creates and destroys building instances.
type Buildings interface {
	Spawn(def *defs.BuildingDefinition, root tilemap.Cell) *component.Building
	Remove(id types.EntityID) bool
	FindAt(c tilemap.Cell, filter func(*component.Building) bool) *component.Building
}

// Highlights is what the renderer overlays while a building is being placed.
type Highlights struct {
	Danger    grid.CellSet
	Buildable grid.CellSet
	Expanded  grid.CellSet // клетки, которые откроет новое здание
	Resource  grid.CellSet // ресурсы в радиусе нового здания
}

// Controller drives building placement and removal from player input.
type Controller struct {
	grid       Grid
	wallet     Wallet
	buildings  Buildings
	dispatcher *event.Dispatcher

	mode       Mode
	selected   *defs.BuildingDefinition
	hovered    tilemap.Area
	ghost      *component.Ghost
	highlights Highlights
}

func NewController(g Grid, wallet Wallet, buildings Buildings, dispatcher *event.Dispatcher) *Controller {
	if g == nil || wallet == nil || buildings == nil || dispatcher == nil {
		panic("placement: all collaborators are required")
	}
	c := &Controller{
		grid:       g,
		wallet:     wallet,
		buildings:  buildings,
		dispatcher: dispatcher,
		hovered:    tilemap.NewArea(tilemap.Cell{}, 1, 1),
	}
	dispatcher.Subscribe(event.BuildingTypeSelected, c)
	return c
}

// OnEvent starts a placement session when the UI selects a building type.
func (c *Controller) OnEvent(e event.Event) {
	if e.Type != event.BuildingTypeSelected {
		return
	}
	if def, ok := e.Data.(*defs.BuildingDefinition); ok {
		c.SelectBuilding(def)
	}
}

// SelectBuilding enters placing mode for def, replacing any current session.
func (c *Controller) SelectBuilding(def *defs.BuildingDefinition) {
	if def == nil {
		return
	}
	c.changeMode(ModePlacing)
	c.selected = def
	c.hovered.Size = def.Size()
	c.ghost = &component.Ghost{Def: def, Area: c.hovered}
	c.refresh()
}

// Update runs once per tick with the pointer position in tile units.
func (c *Controller) Update(cursor tilemap.Point) {
	var root tilemap.Cell
	switch c.mode {
	case ModeIdle:
		root = cursor.Floor()
	case ModePlacing:
		// курсор держит центр призрака
		root = tilemap.Point{
			X: cursor.X - float64(c.hovered.Size.X)/2,
			Y: cursor.Y - float64(c.hovered.Size.Y)/2,
		}.Round()
	}

	if root == c.hovered.Position {
		return
	}
	c.hovered.Position = root
	if c.mode == ModePlacing {
		c.ghost.Area = c.hovered
		c.ghost.Hops++
		c.refresh()
	}
}

// HandleInput applies a discrete action. It returns true if the action had
// an effect.
func (c *Controller) HandleInput(action Action) bool {
	switch c.mode {
	case ModeIdle:
		if action == ActionRemove {
			return c.destroyBuildingAtHoveredCell()
		}
	case ModePlacing:
		switch action {
		case ActionCancel:
			c.changeMode(ModeIdle)
			return true
		case ActionConfirm:
			if c.canPlaceAt(c.hovered) {
				c.placeBuildingAtHoveredCell()
				return true
			}
		}
	}
	return false
}

func (c *Controller) placeBuildingAtHoveredCell() {
	def := c.selected
	b := c.buildings.Spawn(def, c.hovered.Position)
	c.wallet.Spend(def.Cost)
	c.dispatcher.Dispatch(event.Event{Type: event.BuildingPlaced, Data: b})
	c.changeMode(ModeIdle)
}

func (c *Controller) destroyBuildingAtHoveredCell() bool {
	b := c.buildings.FindAt(c.hovered.Position, func(b *component.Building) bool {
		return b.Def.Deletable
	})
	if b == nil {
		return false
	}
	c.wallet.Refund(b.Def.Cost)
	c.buildings.Remove(b.ID)
	c.dispatcher.Dispatch(event.Event{Type: event.BuildingDestroyed, Data: b})
	return true
}

// canPlaceAt is evaluated at the moment of use; the ghost flag may be a tick old.
func (c *Controller) canPlaceAt(area tilemap.Area) bool {
	if c.selected == nil {
		return false
	}
	return c.grid.IsAreaBuildable(area) && c.wallet.Available() >= c.selected.Cost
}

func (c *Controller) refresh() {
	c.highlights = Highlights{
		Danger:    c.grid.DangerCells(),
		Buildable: c.grid.BuildableCells(),
	}
	valid := c.canPlaceAt(c.hovered)
	if valid {
		c.highlights.Expanded = c.grid.ExpandedBuildableCells(c.hovered, c.selected.BuildableRadius)
		c.highlights.Resource = c.grid.ResourceCellsInRadius(c.hovered, c.selected.ResourceRadius)
	}
	if c.ghost != nil {
		c.ghost.Valid = valid
	}
}

func (c *Controller) changeMode(to Mode) {
	if c.mode == ModePlacing {
		c.ghost = nil
		c.selected = nil
		c.highlights = Highlights{}
		c.hovered.Size = tilemap.Cell{X: 1, Y: 1}
	}
	c.mode = to
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Selected returns the building type being placed, or nil.
func (c *Controller) Selected() *defs.BuildingDefinition { return c.selected }

// Ghost returns the preview, or nil when idle.
func (c *Controller) Ghost() *component.Ghost { return c.ghost }

// HoveredArea returns the area under the cursor.
func (c *Controller) HoveredArea() tilemap.Area { return c.hovered }

// Highlights returns the overlays computed at the last refresh.
func (c *Controller) Highlights() Highlights { return c.highlights }
