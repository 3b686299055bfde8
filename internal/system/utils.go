// internal/system/utils.go
package system

import (
	"image/color"
	"sort"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/types"
)

// SortedIDs возвращает ключи карты компонентов в возрастающем порядке.
// Системы обходят сущности по отсортированному списку, чтобы результат тика
// не зависел от порядка итерации по map.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CreateExplosion создаёт сущность взрыва указанного типа в точке center.
// Радиус начинается с нуля и растёт в фазе расширения.
func CreateExplosion(ecs *entity.ECS, kind component.ExplosionKind, center types.Point, maxRadius float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Explosions[id] = &component.Explosion{
		Kind:      kind,
		Center:    center,
		Radius:    0,
		MaxRadius: maxRadius,
		Expanding: true,
	}
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.Renderables[id] = &component.Renderable{
		Color:  explosionColor(kind),
		Radius: 0,
	}
	return id
}

func explosionColor(kind component.ExplosionKind) color.RGBA {
	switch kind {
	case component.ExplosionGravity:
		return config.GravityColor
	case component.ExplosionSecondary:
		return config.SecondaryColor
	}
	return config.ExplosionColor
}
