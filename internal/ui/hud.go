// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
)

const (
	hudMarginX  = 12
	hudMarginY  = 24
	ammoOffsetY = 22
)

// HUD показывает очки, уровень, порог победы и боезапас батарей.
type HUD struct {
	fontFace font.Face
}

func NewHUD(fontFace font.Face) *HUD {
	return &HUD{fontFace: fontFace}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	score := fmt.Sprintf("SCORE %d / %d", snap.Score, snap.Level*config.WinScorePerLevel)
	text.Draw(screen, score, h.fontFace, hudMarginX, hudMarginY, config.TextLightColor)

	level := fmt.Sprintf("LEVEL %d", snap.Level)
	text.Draw(screen, level, h.fontFace, config.ScreenWidth-90, hudMarginY, config.TextLightColor)

	// Счётчик боезапаса под каждой живой батареей
	for _, battery := range snap.Batteries {
		if battery.Destroyed {
			continue
		}
		ammo := fmt.Sprintf("%d", battery.Ammo)
		text.Draw(screen, ammo, h.fontFace, int(battery.Pos.X)-6, int(battery.Pos.Y)+ammoOffsetY, config.TextLightColor)
	}
}
