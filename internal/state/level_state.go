// internal/state/level_state.go
package state

import (
	"fmt"
	"log"

	"go-tower-grid/internal/config"
	"go-tower-grid/internal/event"
	"go-tower-grid/internal/level"
	"go-tower-grid/internal/placement"
	"go-tower-grid/internal/report"
	"go-tower-grid/internal/ui"
	"go-tower-grid/pkg/render"
	"go-tower-grid/pkg/tilemap"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// LevelState - игровой уровень: ввод, контроллер размещения, отрисовка.
type LevelState struct {
	sm    *StateMachine
	index int

	level    *level.Level
	renderer *render.GridRenderer
	bar      *ui.BuildingBar
	label    *ui.ResourceLabel

	camX, camY float64 // камера в мировых пикселях
	completed  bool
	failed     bool
}

func NewLevelState(sm *StateMachine, index int) *LevelState {
	return &LevelState{sm: sm, index: index}
}

func (s *LevelState) Enter() {
	shared := s.sm.Shared
	d := event.NewDispatcher()
	d.Subscribe(event.LevelCompleted, event.Func(func(e event.Event) {
		log.Printf("Level completed: %v", e.Data)
		s.completed = true
	}))

	l, err := shared.Campaign.Load(s.index, level.WithDispatcher(d))
	if err != nil {
		log.Printf("Failed to load level %d: %v", s.index, err)
		s.failed = true
		return
	}
	s.level = l
	s.renderer = render.NewGridRenderer(l.Terrain, l.Grid, l.Elevation, config.TileSize)
	s.bar = ui.NewBuildingBar(shared.Catalog.Selectable(), d)
	s.label = ui.NewResourceLabel(config.ResourceLabelX, config.ResourceLabelY, d)
	l.Ledger.Announce()

	x, y, w, h := s.renderer.TerrainBounds()
	s.camX = x + w/2 - config.ScreenWidth/2
	s.camY = y + h/2 - (config.ScreenHeight-config.BarHeight)/2
}

func (s *LevelState) Update(deltaTime float64) {
	if s.failed {
		s.sm.SetState(NewMenuState(s.sm))
		return
	}
	if s.completed {
		s.sm.SetState(NewCompleteState(s.sm, s.level.Def.Name))
		return
	}

	s.handleCamera(deltaTime)
	ctrl := s.level.Controller

	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.bar.Select(i)
		}
	}

	// Сначала ввод, потом тик
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !s.bar.HandleClick(x, y) {
			ctrl.HandleInput(placement.ActionConfirm)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if ctrl.Mode() == placement.ModePlacing {
			ctrl.HandleInput(placement.ActionCancel)
		} else {
			ctrl.HandleInput(placement.ActionRemove)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ctrl.HandleInput(placement.ActionRemove)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ctrl.Mode() == placement.ModePlacing {
			ctrl.HandleInput(placement.ActionCancel)
		} else {
			s.sm.SetState(NewMenuState(s.sm))
			return
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		s.copySummary()
	}

	ctrl.Update(s.cursorPoint())
	if ctrl.Mode() == placement.ModeIdle {
		s.bar.ClearSelection()
	}
}

// copySummary кладёт сводку по сетке в буфер обмена.
func (s *LevelState) copySummary() {
	summary := report.Summarize(s.level).String()
	if err := clipboard.WriteAll(summary); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
		return
	}
	log.Printf("Copied: %s", summary)
}

func (s *LevelState) handleCamera(deltaTime float64) {
	step := config.CameraPanSpeed * config.TileSize * deltaTime
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		s.camX -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		s.camX += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		s.camY -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		s.camY += step
	}
}

func (s *LevelState) cursorPoint() tilemap.Point {
	x, y := ebiten.CursorPosition()
	return tilemap.WorldToPoint(float64(x)+s.camX, float64(y)+s.camY, config.TileSize)
}

func (s *LevelState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if s.level == nil {
		return
	}
	ctrl := s.level.Controller
	goal, hasGoal := s.level.Goal()
	s.renderer.Draw(screen, render.Scene{
		Buildings:  s.level.Roster.Live(),
		Ghost:      ctrl.Ghost(),
		Highlights: ctrl.Highlights(),
		Hovered:    ctrl.HoveredArea(),
		Goal:       goal,
		HasGoal:    hasGoal,
	}, s.camX, s.camY)

	face := s.sm.Shared.Face
	s.label.Draw(screen, face)
	x, y := ebiten.CursorPosition()
	s.bar.Draw(screen, face, x, y)

	hint := fmt.Sprintf("%s | %s | LMB place, RMB cancel/remove, F2 copy stats, Esc menu", s.level.Def.Name, ctrl.Mode())
	ebitenutil.DebugPrintAt(screen, hint, config.ResourceLabelX, config.ResourceLabelY+24)
}

func (s *LevelState) Exit() {
	if s.level != nil {
		s.level.Unload()
	}
}
