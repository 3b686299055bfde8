// internal/app/snapshot.go
package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/types"
)

// Snapshot — неизменяемый срез состояния мира для слоя отрисовки.
// Все поля копируются по значению; ссылки на внутренние структуры
// симуляции наружу не выдаются. Срезы отсортированы по ID сущности.
type Snapshot struct {
	Tick   uint64
	Status component.Status
	Score  int
	Level  int

	Cities     []CityView
	Batteries  []BatteryView
	Rockets    []RocketView
	Missiles   []MissileView
	Explosions []ExplosionView
}

type CityView struct {
	ID        types.EntityID
	Pos       types.Point
	Destroyed bool
}

type BatteryView struct {
	ID        types.EntityID
	Pos       types.Point
	Ammo      int
	Destroyed bool
}

type RocketView struct {
	ID       types.EntityID
	Pos      types.Point
	Progress float64
}

type MissileView struct {
	ID       types.EntityID
	Pos      types.Point
	Progress float64
	Gravity  bool
}

type ExplosionView struct {
	ID        types.EntityID
	Kind      component.ExplosionKind
	Center    types.Point
	Radius    float64
	MaxRadius float64
}

// Snapshot собирает срез текущего состояния.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		Tick:   ecs.Tick,
		Status: ecs.GameState.Status,
		Score:  ecs.GameState.Score,
		Level:  ecs.GameState.Level,
	}

	for _, id := range system.SortedIDs(ecs.Cities) {
		pos := ecs.Positions[id]
		snap.Cities = append(snap.Cities, CityView{
			ID:        id,
			Pos:       types.Point{X: pos.X, Y: pos.Y},
			Destroyed: ecs.Cities[id].IsDestroyed,
		})
	}
	for _, id := range system.SortedIDs(ecs.Batteries) {
		pos := ecs.Positions[id]
		battery := ecs.Batteries[id]
		snap.Batteries = append(snap.Batteries, BatteryView{
			ID:        id,
			Pos:       types.Point{X: pos.X, Y: pos.Y},
			Ammo:      battery.Ammo,
			Destroyed: battery.IsDestroyed,
		})
	}
	for _, id := range system.SortedIDs(ecs.Rockets) {
		pos := ecs.Positions[id]
		snap.Rockets = append(snap.Rockets, RocketView{
			ID:       id,
			Pos:      types.Point{X: pos.X, Y: pos.Y},
			Progress: ecs.Rockets[id].Progress,
		})
	}
	for _, id := range system.SortedIDs(ecs.Missiles) {
		pos := ecs.Positions[id]
		missile := ecs.Missiles[id]
		snap.Missiles = append(snap.Missiles, MissileView{
			ID:       id,
			Pos:      types.Point{X: pos.X, Y: pos.Y},
			Progress: missile.Progress,
			Gravity:  missile.Gravity,
		})
	}
	for _, id := range system.SortedIDs(ecs.Explosions) {
		e := ecs.Explosions[id]
		snap.Explosions = append(snap.Explosions, ExplosionView{
			ID:        id,
			Kind:      e.Kind,
			Center:    e.Center,
			Radius:    e.Radius,
			MaxRadius: e.MaxRadius,
		})
	}
	return snap
}
