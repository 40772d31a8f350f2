// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-tower-grid/internal/config"
	"go-tower-grid/internal/defs"
	"go-tower-grid/internal/level"
	"go-tower-grid/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

const maxDeltaTime = 0.06

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	catalogPath := flag.String("catalog", config.DefaultCatalogPath, "building catalog (JSON)")
	campaignPath := flag.String("campaign", config.DefaultCampaignPath, "campaign file (YAML)")
	startLevel := flag.Int("level", -1, "start directly at this level index; -1 opens the menu")
	flag.Parse()

	catalog, err := defs.LoadCatalog(*catalogPath)
	if err != nil {
		log.Fatal(err)
	}
	campaign, err := level.LoadCampaign(*campaignPath, catalog)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine(&state.Shared{
		Catalog:  catalog,
		Campaign: campaign,
		Face:     basicfont.Face7x13,
	})
	if *startLevel >= 0 {
		sm.SetState(state.NewLevelState(sm, *startLevel))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tile Grid Builder")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
