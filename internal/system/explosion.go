// internal/system/explosion.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
	"go-missile-defense/pkg/utils"
)

// ExplosionSystem развивает радиусы взрывов и применяет их эффекты
// к живым ракетам: гравитационное притяжение, затем зону поражения.
type ExplosionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewExplosionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ExplosionSystem {
	return &ExplosionSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

type pendingExplosion struct {
	kind      component.ExplosionKind
	center    types.Point
	maxRadius float64
}

func (s *ExplosionSystem) Update() {
	// Вторичные взрывы добавляются после прохода, чтобы не менять
	// коллекцию во время итерации.
	var spawned []pendingExplosion

	for _, id := range SortedIDs(s.ecs.Explosions) {
		e := s.ecs.Explosions[id]

		if e.Expanding {
			e.Radius += config.ExplosionGrowthRate * e.MaxRadius
			if e.Radius >= e.MaxRadius {
				e.Radius = e.MaxRadius
				e.Expanding = false
			}
		} else {
			e.Radius -= config.ExplosionDecayRate * e.MaxRadius
			if e.Radius <= 0 {
				s.ecs.RemoveEntity(id)
				continue
			}
		}
		s.ecs.Renderables[id].Radius = float32(e.Radius)

		// Сначала притяжение, затем проверка зоны поражения — уже по
		// смещённым позициям ракет.
		if e.Kind == component.ExplosionGravity {
			s.applyGravity(e)
		}
		spawned = append(spawned, s.applyKills(e)...)
	}

	for _, p := range spawned {
		CreateExplosion(s.ecs, p.kind, p.center, p.maxRadius)
	}
}

// applyGravity притягивает каждую ракету в радиусе 2r к центру взрыва.
// Сила линейно спадает от центра к границе зоны действия.
func (s *ExplosionSystem) applyGravity(e *component.Explosion) {
	reach := 2 * e.Radius
	if reach <= 0 {
		return
	}
	for _, id := range SortedIDs(s.ecs.Rockets) {
		pos := s.ecs.Positions[id]
		d := utils.Dist(pos.X, pos.Y, e.Center.X, e.Center.Y)
		if d == 0 {
			// Ракета ровно в центре: направление не определено,
			// деление на ноль дало бы NaN в позиции.
			continue
		}
		if d >= reach {
			continue
		}
		pull := (reach - d) / reach * config.GravityPullConstant
		dx := (e.Center.X - pos.X) / d * pull
		dy := (e.Center.Y - pos.Y) / d * pull

		// Смещается вся траектория, иначе интерполяция следующего
		// тика отменила бы притяжение.
		rocket := s.ecs.Rockets[id]
		rocket.Start.X += dx
		rocket.Start.Y += dy
		rocket.Target.X += dx
		rocket.Target.Y += dy
		pos.X += dx
		pos.Y += dy
	}
}

// applyKills уничтожает ракеты строго внутри текущего радиуса взрыва.
// Ракета удаляется немедленно, чтобы пересекающиеся взрывы не засчитали
// её дважды за один тик.
func (s *ExplosionSystem) applyKills(e *component.Explosion) []pendingExplosion {
	var spawned []pendingExplosion
	for _, id := range SortedIDs(s.ecs.Rockets) {
		pos := s.ecs.Positions[id]
		d := utils.Dist(pos.X, pos.Y, e.Center.X, e.Center.Y)
		if d >= e.Radius {
			continue
		}
		last := types.Point{X: pos.X, Y: pos.Y}
		s.ecs.RemoveEntity(id)
		s.ecs.GameState.Score += config.RocketKillScore
		spawned = append(spawned, pendingExplosion{
			kind:      component.ExplosionSecondary,
			center:    last,
			maxRadius: config.StandardExplosionRadius * config.SecondaryRadiusFactor,
		})
		s.eventDispatcher.Dispatch(event.Event{Type: event.RocketDestroyed, Data: id})
	}
	return spawned
}
