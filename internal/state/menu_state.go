// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
)

// MenuState — стартовый экран
type MenuState struct {
	sm       *StateMachine
	log      zerolog.Logger
	seed     int64
	fontFace font.Face
	banner   *ui.Banner
}

func NewMenuState(sm *StateMachine, log zerolog.Logger, seed int64, fontFace font.Face) *MenuState {
	return &MenuState{
		sm:       sm,
		log:      log,
		seed:     seed,
		fontFace: fontFace,
		banner:   ui.NewBanner(fontFace),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.log, m.seed, m.fontFace))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.banner.Draw(screen, "MISSILE DEFENSE", config.TextLightColor, "Press Space to start")
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
