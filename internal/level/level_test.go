package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-tower-grid/internal/defs"
	"go-tower-grid/internal/event"
	"go-tower-grid/internal/placement"
	"go-tower-grid/internal/utils"
	"go-tower-grid/pkg/tilemap"
)

const testCatalog = `[
  {"id": "BASE", "name": "Base", "cost": 0, "dimensions": {"width": 1, "height": 1},
   "buildable_radius": 2, "deletable": false},
  {"id": "ROAD", "name": "Road", "cost": 1, "dimensions": {"width": 1, "height": 1},
   "buildable_radius": 2, "deletable": true, "selectable": true}
]`

const testLevel = `
name: Strip
starting_resources: 5
goal: [6, 0]
legend:
  ".": [is_buildable]
  "w": [is_wood]
terrain:
  name: ground
  rows:
    - "........"
    - "........"
  children:
    - name: forest
      rows:
        - "   w"
buildings:
  - building: BASE
    at: [0, 0]
`

func mustCatalog(t *testing.T) *defs.Catalog {
	t.Helper()
	catalog, err := defs.ParseCatalog([]byte(testCatalog))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return catalog
}

func mustLevel(t *testing.T, catalog *defs.Catalog, src string) *defs.LevelDefinition {
	t.Helper()
	def, err := defs.ParseLevel([]byte(src), catalog)
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	return def
}

func placeRoad(t *testing.T, l *Level, x int) {
	t.Helper()
	road, _ := l.Catalog.Get("ROAD")
	l.Controller.SelectBuilding(road)
	l.Controller.Update(tilemap.Point{X: float64(x) + 0.5, Y: 0.5})
	if !l.Controller.HandleInput(placement.ActionConfirm) {
		t.Fatalf("road at (%d,0) rejected", x)
	}
}

func TestNewSeedsBuildings(t *testing.T) {
	catalog := mustCatalog(t)
	l, err := New(mustLevel(t, catalog, testLevel), catalog)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if l.Roster.Len() != 1 {
		t.Fatalf("roster len = %d, want 1", l.Roster.Len())
	}
	if l.Ledger.Available() != 5 {
		t.Errorf("seeded buildings must be free: available = %d", l.Ledger.Available())
	}
	if !l.Grid.IsCellBuildable(tilemap.Cell{X: 2, Y: 0}) {
		t.Error("(2,0) should be opened by the base")
	}
	if l.Grid.IsCellBuildable(tilemap.Cell{X: 3, Y: 0}) {
		t.Error("forest tile (3,0) is not buildable")
	}
	if l.Completed() {
		t.Error("goal should not be reached yet")
	}
	if goal, ok := l.Goal(); !ok || goal != (tilemap.Cell{X: 6, Y: 0}) {
		t.Errorf("goal = %v, %v", goal, ok)
	}
}

func TestGoalFiresOnce(t *testing.T) {
	catalog := mustCatalog(t)
	l, err := New(mustLevel(t, catalog, testLevel), catalog)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var completed []string
	l.Dispatcher.Subscribe(event.LevelCompleted, event.Func(func(e event.Event) {
		completed = append(completed, e.Data.(string))
	}))

	placeRoad(t, l, 2)
	if l.Completed() {
		t.Fatal("goal reached too early")
	}
	placeRoad(t, l, 4)
	placeRoad(t, l, 5)

	if len(completed) != 1 || completed[0] != "Strip" {
		t.Fatalf("completed events = %v, want [Strip]", completed)
	}
	if l.Ledger.Available() != 2 {
		t.Errorf("available = %d, want 2", l.Ledger.Available())
	}
}

func TestPlace(t *testing.T) {
	catalog := mustCatalog(t)
	l, err := New(mustLevel(t, catalog, testLevel), catalog)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := l.Place("ROAD", tilemap.Cell{X: 2, Y: 1}); err != nil {
		t.Fatalf("place: %v", err)
	}
	if l.Roster.FindAt(tilemap.Cell{X: 2, Y: 1}, nil) == nil {
		t.Error("road not spawned")
	}
	if err := l.Place("ROAD", tilemap.Cell{X: 7, Y: 0}); err == nil {
		t.Error("expected an out of reach placement to fail")
	}
	if err := l.Place("CASTLE", tilemap.Cell{}); err == nil {
		t.Error("expected unknown building error")
	}
	if l.Controller.Mode() != placement.ModeIdle || l.Ledger.Available() != 4 {
		t.Errorf("mode=%v available=%d", l.Controller.Mode(), l.Ledger.Available())
	}
}

func TestAutoBuildKeepsInvariants(t *testing.T) {
	catalog := mustCatalog(t)
	l, err := New(mustLevel(t, catalog, testLevel), catalog, WithStartingResources(6))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	placed := l.AutoBuild(utils.NewPRNGService(11), 200)
	if l.Roster.Len() != 1+placed {
		t.Errorf("roster len = %d, placed = %d", l.Roster.Len(), placed)
	}
	if l.Ledger.Available() < 0 {
		t.Errorf("available went negative: %d", l.Ledger.Available())
	}
	if l.Ledger.Spent() != placed {
		t.Errorf("spent = %d, want %d (roads cost 1)", l.Ledger.Spent(), placed)
	}
	st := l.Grid.Snapshot()
	for c := range st.Occupied {
		if st.Buildable.Has(c) {
			t.Errorf("occupied tile %v is buildable", c)
		}
	}
}

func TestOptions(t *testing.T) {
	catalog := mustCatalog(t)
	src := strings.Replace(testLevel, "goal: [6, 0]", "goal: [1, 1]", 1)

	d := event.NewDispatcher()
	var completed int
	d.Subscribe(event.LevelCompleted, event.Func(func(event.Event) { completed++ }))

	l, err := New(mustLevel(t, catalog, src), catalog, WithDispatcher(d), WithStartingResources(9))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l.Dispatcher != d {
		t.Error("dispatcher option ignored")
	}
	if l.Ledger.Available() != 9 {
		t.Errorf("available = %d, want 9", l.Ledger.Available())
	}
	if completed != 1 || !l.Completed() {
		t.Errorf("goal inside the base radius should complete during load, got %d events", completed)
	}

	l.Unload()
	l.Dispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: "again"})
	if completed != 1 {
		t.Error("listeners survived Unload")
	}
}

func TestNewRejectsUnknownBuilding(t *testing.T) {
	catalog := mustCatalog(t)
	def := &defs.LevelDefinition{
		Name:      "Broken",
		Buildings: []defs.PlacementSpec{{Building: "CASTLE", At: []int{0, 0}}},
	}
	if _, err := New(def, catalog); err == nil || !strings.Contains(err.Error(), "CASTLE") {
		t.Fatalf("expected unknown building error, got %v", err)
	}
}

func TestCampaignWalksLevels(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("one.yaml", testLevel)
	write("two.yaml", strings.Replace(testLevel, "name: Strip", "name: Second", 1))
	write("campaign.yaml", "levels:\n  - file: one.yaml\n  - file: two.yaml\n")

	c, err := LoadCampaign(filepath.Join(dir, "campaign.yaml"), mustCatalog(t))
	if err != nil {
		t.Fatalf("load campaign: %v", err)
	}
	if c.Len() != 2 || c.Current() != -1 {
		t.Fatalf("len=%d current=%d", c.Len(), c.Current())
	}

	first, err := c.Load(0)
	if err != nil {
		t.Fatalf("load 0: %v", err)
	}
	if first.Def.Name != "Strip" || !c.HasNext() {
		t.Errorf("first = %q, hasNext = %v", first.Def.Name, c.HasNext())
	}

	second, err := c.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if second.Def.Name != "Second" || c.HasNext() {
		t.Errorf("second = %q, hasNext = %v", second.Def.Name, c.HasNext())
	}
	if _, err := c.Next(); err == nil {
		t.Error("expected error past the last level")
	}
	if _, err := c.Load(5); err == nil {
		t.Error("expected out of range error")
	}
}
