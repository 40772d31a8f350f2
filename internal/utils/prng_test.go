package utils

import (
	"testing"

	"go-tower-grid/pkg/tilemap"
)

func TestSeededRunsRepeat(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}

func TestCellIn(t *testing.T) {
	s := NewPRNGService(1)
	area := tilemap.NewArea(tilemap.Cell{X: -3, Y: 5}, 4, 2)
	for i := 0; i < 200; i++ {
		if c := s.CellIn(area); !area.Contains(c) {
			t.Fatalf("cell %v outside %v", c, area)
		}
	}
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(3)
	if got := s.ChooseWeighted(nil); got != -1 {
		t.Errorf("empty weights = %d, want -1", got)
	}
	if got := s.ChooseWeighted([]int{0, -2}); got != -1 {
		t.Errorf("no positive weight = %d, want -1", got)
	}
	for i := 0; i < 100; i++ {
		if got := s.ChooseWeighted([]int{0, 5, 0}); got != 1 {
			t.Fatalf("only index 1 has weight, got %d", got)
		}
	}
}
