package report

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-tower-grid/internal/defs"
	"go-tower-grid/internal/level"
	"go-tower-grid/pkg/tilemap"
)

const testCatalog = `[
  {"id": "BASE", "name": "Base", "cost": 0, "dimensions": {"width": 1, "height": 1},
   "buildable_radius": 2, "deletable": false},
  {"id": "LUMBER", "name": "Lumber", "cost": 1, "dimensions": {"width": 1, "height": 1},
   "resource_radius": 2, "deletable": true, "selectable": true}
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

func newLevel(t *testing.T) *level.Level {
	t.Helper()
	catalog, err := defs.ParseCatalog([]byte(testCatalog))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	def, err := defs.ParseLevel([]byte(testLevel), catalog)
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	l, err := level.New(def, catalog)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return l
}

func pixel(img image.Image, c tilemap.Cell, scale int) color.RGBA {
	return color.RGBAModel.Convert(img.At(c.X*scale+scale/2, c.Y*scale+scale/2)).(color.RGBA)
}

func same(a color.RGBA, b color.Color) bool {
	return a == color.RGBAModel.Convert(b).(color.RGBA)
}

func TestRenderColoursTiles(t *testing.T) {
	l := newLevel(t)
	if err := l.Place("LUMBER", tilemap.Cell{X: 1, Y: 1}); err != nil {
		t.Fatalf("place: %v", err)
	}

	const scale = 8
	scheme := DefaultScheme()
	img := Render(l, scale, scheme)

	if b := img.Bounds(); b.Dx() != 8*scale || b.Dy() != 2*scale {
		t.Fatalf("bounds = %v", b)
	}
	tests := []struct {
		name string
		cell tilemap.Cell
		want color.Color
	}{
		{"occupied base", tilemap.Cell{X: 0, Y: 0}, scheme.Occupied},
		{"occupied lumber", tilemap.Cell{X: 1, Y: 1}, scheme.Occupied},
		{"open tile", tilemap.Cell{X: 2, Y: 0}, scheme.Buildable},
		{"harvested forest", tilemap.Cell{X: 3, Y: 0}, scheme.Collected},
		{"plain ground", tilemap.Cell{X: 7, Y: 1}, scheme.Ground},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pixel(img, tt.cell, scale); !same(got, tt.want) {
				t.Errorf("pixel at %v = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	l := newLevel(t)
	s := Summarize(l)
	if s.Level != "Strip" || s.Buildings != 1 || s.Occupied != 1 || s.Available != 5 || s.Completed {
		t.Errorf("summary = %+v", s)
	}
	if !strings.Contains(s.String(), "buildings=1") {
		t.Errorf("string = %q", s.String())
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.png")
	if err := SavePNG(path, Render(newLevel(t), 4, nil)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("report not written: %v", err)
	}
}
