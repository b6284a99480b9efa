// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-wave-survivor/internal/app"
	"go-wave-survivor/internal/config"
	"go-wave-survivor/internal/defs"
	"go-wave-survivor/internal/run"
	"go-wave-survivor/internal/state"
	"go-wave-survivor/internal/ui"
	"go-wave-survivor/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaMs/1000 {
		deltaTime = config.MaxDeltaMs / 1000
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Terminated() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.LoadSettings()

	lib, err := defs.DefaultLibrary()
	if err != nil {
		log.Fatalf("load content: %v", err)
	}
	store := run.NewFileStore(settings.SaveDir, config.SaveSlotName)
	rng := utils.NewPRNGService(settings.Seed)

	session := app.NewSession(lib, store, rng, nil)
	game := &AppGame{
		stateMachine:   state.NewStateMachine(session, ui.DefaultFace()),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Broteto")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
