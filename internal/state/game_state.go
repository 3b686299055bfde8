// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/ui"
)

// GameState — игровое состояние: транслирует ввод в команды симуляции
// и продвигает её на один тик за кадр.
type GameState struct {
	sm     *StateMachine
	game   *app.Game
	hud    *ui.HUD
	banner *ui.Banner
}

func NewGameState(sm *StateMachine, log zerolog.Logger, seed int64, fontFace font.Face) *GameState {
	gameLogic := app.NewGameSeeded(log, seed)
	gameLogic.Start()

	return &GameState{
		sm:     sm,
		game:   gameLogic,
		hud:    ui.NewHUD(fontFace),
		banner: ui.NewBanner(fontFace),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	status := g.game.ECS.GameState.Status
	switch status {
	case component.StatusPlaying:
		// Курсор уже в логических координатах: Layout совпадает с
		// размером игрового поля.
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			g.game.Fire(types.Point{X: float64(x), Y: float64(y)}, false)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			x, y := ebiten.CursorPosition()
			g.game.Fire(types.Point{X: float64(x), Y: float64(y)}, true)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.game.AreaClear()
		}
	case component.StatusWon:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.game.AdvanceLevel()
		}
	case component.StatusLost:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.game.Restart()
		}
	}

	g.game.Step()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.RenderSystem.Draw(screen)

	snap := g.game.Snapshot()
	g.hud.Draw(screen, snap)

	switch snap.Status {
	case component.StatusWon:
		g.banner.Draw(screen, "LEVEL COMPLETE", config.StatusWonColor, "Press Enter for next level")
	case component.StatusLost:
		g.banner.Draw(screen, "ALL BATTERIES LOST", config.StatusLostColor, "Press Enter to restart")
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
