// internal/ui/banner.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-missile-defense/internal/config"
)

// Banner — полноэкранная надпись поверх затемнённого поля
// (победа, поражение, заголовок меню).
type Banner struct {
	fontFace font.Face
}

func NewBanner(fontFace font.Face) *Banner {
	return &Banner{fontFace: fontFace}
}

func (b *Banner) Draw(screen *ebiten.Image, title string, titleColor color.RGBA, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 128}, false)

	bounds, _ := font.BoundString(b.fontFace, title)
	titleWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	text.Draw(screen, title, b.fontFace,
		(config.ScreenWidth-titleWidth)/2, config.ScreenHeight/2-10, titleColor)

	if subtitle != "" {
		bounds, _ = font.BoundString(b.fontFace, subtitle)
		subWidth := (bounds.Max.X - bounds.Min.X).Ceil()
		text.Draw(screen, subtitle, b.fontFace,
			(config.ScreenWidth-subWidth)/2, config.ScreenHeight/2+24, config.TextLightColor)
	}
}
