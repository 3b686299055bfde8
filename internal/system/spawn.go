// internal/system/spawn.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
)

// SpawnSystem вероятностно вводит новые вражеские ракеты.
type SpawnSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, rng: rng}
}

func (s *SpawnSystem) Update() {
	level := float64(s.ecs.GameState.Level)
	p := config.BaseSpawnRate + level*config.LevelSpawnRate
	if s.rng.Float64() >= p {
		return
	}

	target, ok := s.pickTarget()
	if !ok {
		// Некого атаковать — спавн пропускается, это не ошибка.
		return
	}

	start := types.Point{X: s.rng.Float64() * config.ScreenWidth, Y: 0}
	speed := config.BaseRocketSpeed +
		s.rng.FloatRange(0, config.SpeedJitter) +
		level*config.LevelSpeedRate

	id := s.ecs.NewEntity()
	s.ecs.Rockets[id] = &component.Rocket{
		Start:  start,
		Target: target,
		Speed:  speed,
	}
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.RocketColor,
		Radius: config.RocketDotRadius,
	}
}

// pickTarget выбирает равновероятно один из живых городов или батарей.
// Города и батареи идут в общем пуле, без взвешивания по типу.
func (s *SpawnSystem) pickTarget() (types.Point, bool) {
	candidates := make([]types.Point, 0, len(s.ecs.Cities)+len(s.ecs.Batteries))
	for _, id := range SortedIDs(s.ecs.Cities) {
		if s.ecs.Cities[id].IsDestroyed {
			continue
		}
		pos := s.ecs.Positions[id]
		candidates = append(candidates, types.Point{X: pos.X, Y: pos.Y})
	}
	for _, id := range SortedIDs(s.ecs.Batteries) {
		if s.ecs.Batteries[id].IsDestroyed {
			continue
		}
		pos := s.ecs.Positions[id]
		candidates = append(candidates, types.Point{X: pos.X, Y: pos.Y})
	}
	if len(candidates) == 0 {
		return types.Point{}, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}
