// internal/app/commands.go
package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/types"
	"go-missile-defense/pkg/utils"
)

type commandKind int

const (
	cmdStart commandKind = iota
	cmdRestart
	cmdAdvanceLevel
	cmdFire
	cmdAreaClear
)

type command struct {
	kind    commandKind
	target  types.Point
	gravity bool
}

// Start запускает новую игру из состояния START.
func (g *Game) Start() {
	g.enqueue(command{kind: cmdStart})
}

// Restart перезапускает игру после поражения.
func (g *Game) Restart() {
	g.enqueue(command{kind: cmdRestart})
}

// AdvanceLevel продолжает игру на следующем уровне после победы.
func (g *Game) AdvanceLevel() {
	g.enqueue(command{kind: cmdAdvanceLevel})
}

// Fire выпускает перехватчики в логическую точку target. Обычный выстрел
// даёт три ракеты веером, гравитационный — одну бомбу точно в цель.
func (g *Game) Fire(target types.Point, gravity bool) {
	g.enqueue(command{kind: cmdFire, target: target, gravity: gravity})
}

// AreaClear мгновенно уничтожает все живые вражеские ракеты.
func (g *Game) AreaClear() {
	g.enqueue(command{kind: cmdAreaClear})
}

// fire выбирает живую батарею, ближайшую по X к цели. Если живых батарей
// нет, команда молча отбрасывается.
func (g *Game) fire(target types.Point, gravity bool) {
	batteryID, ok := g.nearestBattery(target.X)
	if !ok {
		g.log.Debug().Msg("fire dropped: no batteries alive")
		return
	}

	battery := g.ECS.Batteries[batteryID]
	if battery.Ammo > 0 {
		// Счётчик чисто индикативный: стрельбу он не блокирует.
		battery.Ammo--
	}

	startPos := g.ECS.Positions[batteryID]
	start := types.Point{X: startPos.X, Y: startPos.Y}

	if gravity {
		g.createMissile(batteryID, start, target, true)
		return
	}
	for _, offset := range [3]float64{-config.SpreadOffsetX, 0, config.SpreadOffsetX} {
		spread := types.Point{X: target.X + offset, Y: target.Y}
		g.createMissile(batteryID, start, spread, false)
	}
}

func (g *Game) nearestBattery(x float64) (types.EntityID, bool) {
	var bestID types.EntityID
	bestDist := -1.0
	for _, id := range system.SortedIDs(g.ECS.Batteries) {
		if g.ECS.Batteries[id].IsDestroyed {
			continue
		}
		d := utils.Abs(g.ECS.Positions[id].X - x)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestID = id
		}
	}
	return bestID, bestDist >= 0
}

func (g *Game) createMissile(batteryID types.EntityID, start, target types.Point, gravity bool) {
	id := g.ECS.NewEntity()
	g.ECS.Missiles[id] = &component.Missile{
		Start:     start,
		Target:    target,
		Speed:     config.MissileSpeed,
		BatteryID: batteryID,
		Gravity:   gravity,
	}
	g.ECS.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.MissileColor,
		Radius: config.MissileDotRadius,
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.MissileFired, Data: id})
}

// areaClear снимает все ракеты с поля с начислением очков за каждую и
// рассыпает по полю декоративную сетку взрывов. Ракеты уже удалены, так
// что сетка никого не притягивает и не добивает.
func (g *Game) areaClear() {
	ecs := g.ECS
	for _, id := range system.SortedIDs(ecs.Rockets) {
		ecs.RemoveEntity(id)
		ecs.GameState.Score += config.RocketKillScore
		g.EventDispatcher.Dispatch(event.Event{Type: event.RocketDestroyed, Data: id})
	}

	for row := 0; row < config.AreaClearRows; row++ {
		for col := 0; col < config.AreaClearCols; col++ {
			center := types.Point{
				X: config.AreaClearOriginX + float64(col)*config.AreaClearSpacingX,
				Y: config.AreaClearOriginY + float64(row)*config.AreaClearSpacingY,
			}
			system.CreateExplosion(ecs, component.ExplosionStandard, center, config.AreaClearRadius)
		}
	}
}
