// internal/report/report.go
package report

import (
	"fmt"
	"image"
	"image/color"

	"go-tower-grid/internal/level"
	"go-tower-grid/pkg/tilemap"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Scheme defines how each kind of tile is coloured.
type Scheme struct {
	Background color.Color
	Ground     color.Color
	Blocked    color.Color
	Wood       color.Color
	Collected  color.Color
	Buildable  color.Color
	Danger     color.Color
	Occupied   color.Color
	Goal       color.Color
	Outline    color.Color
}

// DefaultScheme returns a reasonable default Scheme.
func DefaultScheme() *Scheme {
	return &Scheme{
		Background: colornames.Black,
		Ground:     colornames.Darkolivegreen,
		Blocked:    colornames.Dimgray,
		Wood:       colornames.Forestgreen,
		Collected:  colornames.Gold,
		Buildable:  colornames.Steelblue,
		Danger:     colornames.Crimson,
		Occupied:   colornames.Whitesmoke,
		Goal:       colornames.Yellow,
		Outline:    colornames.Black,
	}
}

// Summary is the textual counterpart of the image.
type Summary struct {
	Level     string
	Buildings int
	Occupied  int
	Buildable int
	Dangerous int
	InRadius  int
	Collected int
	Available int
	Completed bool
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: buildings=%d occupied=%d buildable=%d danger=%d in_radius=%d collected=%d available=%d completed=%v",
		s.Level, s.Buildings, s.Occupied, s.Buildable, s.Dangerous, s.InRadius, s.Collected, s.Available, s.Completed)
}

// Summarize counts the derived sets of l.
func Summarize(l *level.Level) Summary {
	st := l.Grid.Snapshot()
	return Summary{
		Level:     l.Def.Name,
		Buildings: l.Roster.Len(),
		Occupied:  len(st.Occupied),
		Buildable: len(st.Buildable),
		Dangerous: len(st.Dangerous),
		InRadius:  len(st.InRadius),
		Collected: len(st.Collected),
		Available: l.Ledger.Available(),
		Completed: l.Completed(),
	}
}

// Render draws the level at scale pixels per tile. Occupied tiles win over
// danger, danger over buildable, buildable over collected resources.
func Render(l *level.Level, scale int, scheme *Scheme) image.Image {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	area := l.Terrain.UsedArea()
	w, h := max(area.Size.X, 1)*scale, max(area.Size.Y, 1)*scale
	dc := gg.NewContext(w, h)
	dc.SetColor(scheme.Background)
	dc.Clear()

	st := l.Grid.Snapshot()
	s := float64(scale)
	for _, c := range area.Cells() {
		clr := tileColor(l, c, scheme)
		switch {
		case st.Occupied.Has(c):
			clr = scheme.Occupied
		case st.Dangerous.Has(c):
			clr = scheme.Danger
		case st.Buildable.Has(c):
			clr = scheme.Buildable
		case st.Collected.Has(c):
			clr = scheme.Collected
		}
		if clr == nil {
			continue
		}
		x, y := float64(c.X-area.Position.X)*s, float64(c.Y-area.Position.Y)*s
		dc.DrawRectangle(x, y, s, s)
		dc.SetColor(clr)
		dc.Fill()
	}

	dc.SetColor(scheme.Outline)
	dc.SetLineWidth(1)
	for _, b := range l.Roster.Live() {
		a := b.Area()
		dc.DrawRectangle(float64(a.Position.X-area.Position.X)*s, float64(a.Position.Y-area.Position.Y)*s,
			float64(a.Size.X)*s, float64(a.Size.Y)*s)
		dc.Stroke()
	}

	if goal, ok := l.Goal(); ok {
		cx := (float64(goal.X-area.Position.X) + 0.5) * s
		cy := (float64(goal.Y-area.Position.Y) + 0.5) * s
		dc.SetColor(scheme.Goal)
		dc.SetLineWidth(2)
		dc.DrawCircle(cx, cy, s*0.4)
		dc.Stroke()
	}
	return dc.Image()
}

// tileColor returns the terrain colour of c, or nil when no layer has it.
func tileColor(l *level.Level, c tilemap.Cell, scheme *Scheme) color.Color {
	layer, buildable := l.Grid.TileFlag(c, tilemap.FlagBuildable)
	if layer == nil {
		return nil
	}
	if _, wood := l.Grid.TileFlag(c, tilemap.FlagWood); wood {
		return scheme.Wood
	}
	if buildable {
		return scheme.Ground
	}
	return scheme.Blocked
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
