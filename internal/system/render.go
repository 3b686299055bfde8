// internal/system/render.go
package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Сначала следы траекторий, чтобы сущности рисовались поверх них
	for id, rocket := range s.ecs.Rockets {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			vector.StrokeLine(screen, float32(rocket.Start.X), float32(rocket.Start.Y),
				float32(pos.X), float32(pos.Y), 1.0, config.TrailColor, true)
		}
	}
	for id, missile := range s.ecs.Missiles {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			vector.StrokeLine(screen, float32(missile.Start.X), float32(missile.Start.Y),
				float32(pos.X), float32(pos.Y), 1.0, config.TrailColor, true)
		}
	}

	// Затем отрисовка сущностей с Renderable
	for id, render := range s.ecs.Renderables {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			if render.HasStroke {
				strokeRadius := render.Radius + 2
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), strokeRadius, config.TextLightColor, true)
			}
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
		}
	}
}
