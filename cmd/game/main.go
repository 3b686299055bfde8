// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/state"
	"go-missile-defense/internal/ui"
)

const fontSize = 16

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
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
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	settings, err := config.LoadSettings(".")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	if level, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
		log = log.Level(level)
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Debug().Err(http.ListenAndServe(settings.PprofAddr, nil)).Msg("pprof listener stopped")
		}()
	}

	fontFace, err := ui.NewFontFace(fontSize)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load font")
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, log, settings.Seed, fontFace))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(
		int(config.ScreenWidth*settings.WindowScale),
		int(config.ScreenHeight*settings.WindowScale),
	)
	ebiten.SetWindowTitle("Missile Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}
