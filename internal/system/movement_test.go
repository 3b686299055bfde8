// internal/system/movement_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
)

func addRocket(ecs *entity.ECS, start, target types.Point, speed float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Rockets[id] = &component.Rocket{Start: start, Target: target, Speed: speed}
	ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	ecs.Renderables[id] = &component.Renderable{}
	return id
}

func addMissile(ecs *entity.ECS, start, target types.Point, gravity bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Missiles[id] = &component.Missile{Start: start, Target: target, Speed: config.MissileSpeed, Gravity: gravity}
	ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	ecs.Renderables[id] = &component.Renderable{}
	return id
}

func TestMovement_InterpolatesPosition(t *testing.T) {
	ecs := newWorld()
	s := NewMovementSystem(ecs, event.NewDispatcher())

	id := addRocket(ecs, types.Point{X: 0, Y: 0}, types.Point{X: 100, Y: 200}, 0.25)
	s.Update()

	pos := ecs.Positions[id]
	assert.InDelta(t, 25.0, pos.X, 1e-9)
	assert.InDelta(t, 50.0, pos.Y, 1e-9)
	assert.InDelta(t, 0.25, ecs.Rockets[id].Progress, 1e-9)
}

func TestMovement_ProgressMonotonic(t *testing.T) {
	ecs := newWorld()
	s := NewMovementSystem(ecs, event.NewDispatcher())
	id := addRocket(ecs, types.Point{X: 0, Y: 0}, types.Point{X: 100, Y: 100}, 0.1)

	prev := 0.0
	for i := 0; i < 20; i++ {
		s.Update()
		rocket, alive := ecs.Rockets[id]
		if !alive {
			return
		}
		assert.Greater(t, rocket.Progress, prev)
		prev = rocket.Progress
	}
	t.Fatal("rocket was never removed")
}

func TestRocketImpact_HorizontalToleranceOnly(t *testing.T) {
	ecs := newWorld()
	s := NewMovementSystem(ecs, event.NewDispatcher())

	// Цель ракеты по X в допуске от города на 320, по Y — намеренно на
	// верхнем краю: допуск проверяется только по горизонтали.
	var hitCity, farCity types.EntityID
	for id := range ecs.Cities {
		switch ecs.Positions[id].X {
		case 180:
			farCity = id
		case 320:
			hitCity = id
		}
	}
	require.NotZero(t, hitCity)
	require.NotZero(t, farCity)

	addRocket(ecs, types.Point{X: 335, Y: 0}, types.Point{X: 335, Y: 0}, 1.0)
	s.Update()

	assert.True(t, ecs.Cities[hitCity].IsDestroyed, "city within 20 units of target x must be destroyed")
	assert.False(t, ecs.Cities[farCity].IsDestroyed)
}

func TestRocketImpact_CreatesExplosionAndRemovesRocket(t *testing.T) {
	ecs := newWorld()
	s := NewMovementSystem(ecs, event.NewDispatcher())

	target := types.Point{X: 50, Y: 580}
	id := addRocket(ecs, types.Point{X: 50, Y: 0}, target, 1.0)
	s.Update()

	assert.NotContains(t, ecs.Rockets, id)
	assert.NotContains(t, ecs.Positions, id)
	require.Len(t, ecs.Explosions, 1)
	for _, e := range ecs.Explosions {
		assert.Equal(t, component.ExplosionStandard, e.Kind)
		assert.Equal(t, target, e.Center)
		assert.Equal(t, float64(config.StandardExplosionRadius), e.MaxRadius)
		assert.True(t, e.Expanding)
	}
}

func TestMissileDetonation_NeverDamagesStructures(t *testing.T) {
	ecs := newWorld()
	s := NewMovementSystem(ecs, event.NewDispatcher())

	// Перехватчик детонирует прямо над городом — город цел.
	target := types.Point{X: config.CityXPositions[0], Y: config.CityY}
	id := addMissile(ecs, types.Point{X: 100, Y: 560}, target, false)
	ecs.Missiles[id].Progress = 0.999

	s.Update()

	assert.NotContains(t, ecs.Missiles, id)
	require.Len(t, ecs.Explosions, 1)
	for _, city := range ecs.Cities {
		assert.False(t, city.IsDestroyed)
	}
	for _, battery := range ecs.Batteries {
		assert.False(t, battery.IsDestroyed)
	}
}

func TestMissileDetonation_GravityDoublesRadius(t *testing.T) {
	ecs := newWorld()
	s := NewMovementSystem(ecs, event.NewDispatcher())

	id := addMissile(ecs, types.Point{X: 100, Y: 560}, types.Point{X: 300, Y: 200}, true)
	ecs.Missiles[id].Progress = 0.999
	s.Update()

	require.Len(t, ecs.Explosions, 1)
	for _, e := range ecs.Explosions {
		assert.Equal(t, component.ExplosionGravity, e.Kind)
		assert.Equal(t, config.StandardExplosionRadius*config.GravityRadiusFactor, e.MaxRadius)
	}
}

func TestRocketImpact_DestroysBattery(t *testing.T) {
	ecs := newWorld()
	dispatcher := event.NewDispatcher()
	s := NewMovementSystem(ecs, dispatcher)

	addRocket(ecs, types.Point{X: 400, Y: 0}, types.Point{X: 400, Y: config.BatteryY}, 1.0)
	s.Update()

	destroyed := 0
	for id, battery := range ecs.Batteries {
		if battery.IsDestroyed {
			destroyed++
			assert.Equal(t, 400.0, ecs.Positions[id].X)
		}
	}
	assert.Equal(t, 1, destroyed)
}
