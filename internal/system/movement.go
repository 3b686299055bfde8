// internal/system/movement.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
	"go-missile-defense/pkg/utils"
)

// MovementSystem продвигает ракеты и перехватчики по их траекториям
// и обрабатывает долетевшие до цели.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update() {
	for _, id := range SortedIDs(s.ecs.Rockets) {
		rocket := s.ecs.Rockets[id]
		rocket.Progress += rocket.Speed
		if rocket.Progress >= 1 {
			s.rocketImpact(id, rocket)
			continue
		}
		s.interpolate(id, rocket.Start, rocket.Target, rocket.Progress)
	}

	for _, id := range SortedIDs(s.ecs.Missiles) {
		missile := s.ecs.Missiles[id]
		missile.Progress += missile.Speed
		if missile.Progress >= 1 {
			s.missileDetonate(id, missile)
			continue
		}
		s.interpolate(id, missile.Start, missile.Target, missile.Progress)
	}
}

func (s *MovementSystem) interpolate(id types.EntityID, start, target types.Point, progress float64) {
	pos := s.ecs.Positions[id]
	pos.X = utils.Lerp(start.X, target.X, progress)
	pos.Y = utils.Lerp(start.Y, target.Y, progress)
}

// rocketImpact обрабатывает ракету, долетевшую до земли: помечает
// уничтоженными все живые города и батареи в горизонтальном допуске от
// точки цели и создаёт ударный взрыв. Допуск намеренно только по X.
func (s *MovementSystem) rocketImpact(id types.EntityID, rocket *component.Rocket) {
	for _, cityID := range SortedIDs(s.ecs.Cities) {
		city := s.ecs.Cities[cityID]
		if city.IsDestroyed {
			continue
		}
		pos := s.ecs.Positions[cityID]
		if utils.Abs(pos.X-rocket.Target.X) <= config.ImpactTolerance {
			city.IsDestroyed = true
			s.ecs.Renderables[cityID].Color = config.CityRuinColor
			s.eventDispatcher.Dispatch(event.Event{Type: event.CityDestroyed, Data: cityID})
		}
	}
	for _, batteryID := range SortedIDs(s.ecs.Batteries) {
		battery := s.ecs.Batteries[batteryID]
		if battery.IsDestroyed {
			continue
		}
		pos := s.ecs.Positions[batteryID]
		if utils.Abs(pos.X-rocket.Target.X) <= config.ImpactTolerance {
			battery.IsDestroyed = true
			s.ecs.Renderables[batteryID].Color = config.BatteryRuinColor
			s.eventDispatcher.Dispatch(event.Event{Type: event.BatteryDestroyed, Data: batteryID})
		}
	}

	target := rocket.Target
	s.ecs.RemoveEntity(id)
	CreateExplosion(s.ecs, component.ExplosionStandard, target, config.StandardExplosionRadius)
	s.eventDispatcher.Dispatch(event.Event{Type: event.RocketImpacted, Data: id})
}

// missileDetonate превращает долетевший перехватчик во взрыв. Сам по себе
// перехватчик не разрушает города и батареи — только ракеты, через взрыв.
func (s *MovementSystem) missileDetonate(id types.EntityID, missile *component.Missile) {
	kind := component.ExplosionStandard
	maxRadius := config.StandardExplosionRadius
	if missile.Gravity {
		kind = component.ExplosionGravity
		maxRadius = config.StandardExplosionRadius * config.GravityRadiusFactor
	}
	target := missile.Target
	s.ecs.RemoveEntity(id)
	CreateExplosion(s.ecs, kind, target, maxRadius)
	s.eventDispatcher.Dispatch(event.Event{Type: event.MissileDetonated, Data: id})
}
