// internal/level/level.go
package level

import (
	"fmt"

	"go-tower-grid/internal/defs"
	"go-tower-grid/internal/entity"
	"go-tower-grid/internal/event"
	"go-tower-grid/internal/grid"
	"go-tower-grid/internal/ledger"
	"go-tower-grid/internal/placement"
	"go-tower-grid/pkg/tilemap"
)

// Level is the context object of a loaded level. Every core component is
// created here and handed its collaborators explicitly.
type Level struct {
	Def        *defs.LevelDefinition
	Catalog    *defs.Catalog
	Dispatcher *event.Dispatcher
	Terrain    *tilemap.Terrain
	Elevation  *grid.ElevationResolver
	Roster     *entity.Roster
	Grid       *grid.Manager
	Ledger     *ledger.Ledger
	Controller *placement.Controller

	goal      tilemap.Cell
	hasGoal   bool
	completed bool
}

// Option tweaks level construction.
type Option func(*options)

type options struct {
	dispatcher *event.Dispatcher
	starting   *int
}

// WithDispatcher makes the level publish on an existing dispatcher, so
// listeners can be attached before the level seeds its buildings.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

// WithStartingResources overrides the starting resources of the definition.
func WithStartingResources(n int) Option {
	return func(o *options) { o.starting = &n }
}

// New builds the level described by def.
func New(def *defs.LevelDefinition, catalog *defs.Catalog, opts ...Option) (*Level, error) {
	if def == nil || catalog == nil {
		return nil, fmt.Errorf("level: definition and catalog are required")
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dispatcher == nil {
		o.dispatcher = event.NewDispatcher()
	}
	starting := def.StartingResources
	if o.starting != nil {
		starting = *o.starting
	}

	terrain := def.BuildTerrain()
	l := &Level{
		Def:        def,
		Catalog:    catalog,
		Dispatcher: o.dispatcher,
		Terrain:    terrain,
		Elevation:  grid.NewElevationResolver(terrain.Root()),
		Roster:     entity.NewRoster(),
	}
	l.Grid = grid.NewManager(l.Terrain, l.Elevation, l.Roster, l.Dispatcher)
	l.Ledger = ledger.New(l.Dispatcher)
	l.Controller = placement.NewController(l.Grid, l.Ledger, l.Roster, l.Dispatcher)

	l.goal, l.hasGoal = def.GoalCell()
	if l.hasGoal {
		l.Dispatcher.Subscribe(event.GridStateChanged, l)
	}

	l.Ledger.SetStarting(starting)
	for i, p := range def.Buildings {
		bdef, ok := catalog.Get(p.Building)
		if !ok {
			return nil, fmt.Errorf("level %q: building %d: unknown type %q", def.Name, i, p.Building)
		}
		// стартовые здания бесплатны
		b := l.Roster.Spawn(bdef, p.Cell())
		l.Dispatcher.Dispatch(event.Event{Type: event.BuildingPlaced, Data: b})
	}
	return l, nil
}

// OnEvent checks the goal after every grid update.
func (l *Level) OnEvent(e event.Event) {
	if e.Type != event.GridStateChanged || l.completed || !l.hasGoal {
		return
	}
	if l.Grid.IsTileInAnyBuildingRadius(l.goal) {
		l.completed = true
		l.Dispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: l.Def.Name})
	}
}

// Completed reports whether the goal has been reached.
func (l *Level) Completed() bool {
	return l.completed
}

// Goal returns the goal tile, if any.
func (l *Level) Goal() (tilemap.Cell, bool) {
	return l.goal, l.hasGoal
}

// Place runs a full placement of building type id rooted at root through
// the controller, as if the player had selected it and clicked.
func (l *Level) Place(id string, root tilemap.Cell) error {
	def, ok := l.Catalog.Get(id)
	if !ok {
		return fmt.Errorf("unknown building %q", id)
	}
	size := def.Size()
	l.Controller.SelectBuilding(def)
	l.Controller.Update(tilemap.Point{
		X: float64(root.X) + float64(size.X)/2,
		Y: float64(root.Y) + float64(size.Y)/2,
	})
	if !l.Controller.HandleInput(placement.ActionConfirm) {
		l.Controller.HandleInput(placement.ActionCancel)
		return fmt.Errorf("cannot place %s at (%d,%d)", id, root.X, root.Y)
	}
	return nil
}

// Unload drops every subscription on the level's dispatcher.
func (l *Level) Unload() {
	l.Dispatcher.Clear()
}
