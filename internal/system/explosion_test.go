// internal/system/explosion_test.go
package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
)

func addExplosion(ecs *entity.ECS, kind component.ExplosionKind, center types.Point, radius, maxRadius float64, expanding bool) types.EntityID {
	id := CreateExplosion(ecs, kind, center, maxRadius)
	ecs.Explosions[id].Radius = radius
	ecs.Explosions[id].Expanding = expanding
	return id
}

func TestExplosion_GrowsThenContractsThenRemoved(t *testing.T) {
	ecs := newWorld()
	s := NewExplosionSystem(ecs, event.NewDispatcher())

	id := CreateExplosion(ecs, component.ExplosionStandard, types.Point{X: 400, Y: 300}, config.StandardExplosionRadius)

	sawMax := false
	for i := 0; i < 100; i++ {
		s.Update()
		e, alive := ecs.Explosions[id]
		if !alive {
			assert.True(t, sawMax, "explosion must reach max radius before dying")
			assert.NotContains(t, ecs.Positions, id, "removed explosion must leave no components behind")
			return
		}
		assert.GreaterOrEqual(t, e.Radius, 0.0)
		assert.LessOrEqual(t, e.Radius, e.MaxRadius)
		if e.Radius == e.MaxRadius {
			sawMax = true
			assert.False(t, e.Expanding)
		}
	}
	t.Fatal("explosion never decayed")
}

func TestExplosion_KillCreditsScoreOnce(t *testing.T) {
	ecs := newWorld()
	s := NewExplosionSystem(ecs, event.NewDispatcher())

	center := types.Point{X: 400, Y: 300}
	addExplosion(ecs, component.ExplosionStandard, center, 30, config.StandardExplosionRadius, true)
	// Вторая перекрывающая зона: засчитаться должна ровно одна ракета.
	addExplosion(ecs, component.ExplosionStandard, types.Point{X: 405, Y: 300}, 30, config.StandardExplosionRadius, true)

	rocketID := addRocket(ecs, types.Point{X: 400, Y: 0}, types.Point{X: 400, Y: 580}, 0)
	ecs.Positions[rocketID].X = 410
	ecs.Positions[rocketID].Y = 300

	s.Update()

	assert.NotContains(t, ecs.Rockets, rocketID)
	assert.Equal(t, config.RocketKillScore, ecs.GameState.Score, "overlapping explosions must credit a kill once")
}

func TestExplosion_KillSpawnsSecondary(t *testing.T) {
	ecs := newWorld()
	s := NewExplosionSystem(ecs, event.NewDispatcher())

	addExplosion(ecs, component.ExplosionStandard, types.Point{X: 400, Y: 300}, 30, config.StandardExplosionRadius, true)
	rocketID := addRocket(ecs, types.Point{X: 390, Y: 0}, types.Point{X: 390, Y: 580}, 0)
	ecs.Positions[rocketID].Y = 300

	s.Update()

	secondaries := 0
	for _, e := range ecs.Explosions {
		if e.Kind == component.ExplosionSecondary {
			secondaries++
			assert.Equal(t, types.Point{X: 390, Y: 300}, e.Center, "secondary explosion appears at the rocket's last position")
			assert.Equal(t, config.StandardExplosionRadius*config.SecondaryRadiusFactor, e.MaxRadius)
		}
	}
	assert.Equal(t, 1, secondaries)
}

func TestExplosion_KillIsStrictlyInsideRadius(t *testing.T) {
	ecs := newWorld()
	s := NewExplosionSystem(ecs, event.NewDispatcher())

	// Радиус после тика роста: 30 + 0.08*40 = 33.2. Ракета чуть дальше
	// радиуса выживает, чуть ближе — уничтожается.
	addExplosion(ecs, component.ExplosionStandard, types.Point{X: 400, Y: 300}, 30, config.StandardExplosionRadius, true)
	outside := addRocket(ecs, types.Point{X: 0, Y: 0}, types.Point{X: 0, Y: 0}, 0)
	ecs.Positions[outside].X = 400 + 33.4
	ecs.Positions[outside].Y = 300
	inside := addRocket(ecs, types.Point{X: 0, Y: 0}, types.Point{X: 0, Y: 0}, 0)
	ecs.Positions[inside].X = 400 + 33.0
	ecs.Positions[inside].Y = 300

	s.Update()
	assert.Contains(t, ecs.Rockets, outside)
	assert.NotContains(t, ecs.Rockets, inside)
	assert.Equal(t, config.RocketKillScore, ecs.GameState.Score)
}

func TestGravity_PullsRocketTowardCenter(t *testing.T) {
	ecs := newWorld()
	s := NewExplosionSystem(ecs, event.NewDispatcher())

	center := types.Point{X: 400, Y: 300}
	// Сжимающаяся фаза, чтобы радиус за тик был известен точно:
	// 80 - 0.05*80 = 76, зона притяжения 152.
	addExplosion(ecs, component.ExplosionGravity, center, 80, config.StandardExplosionRadius*config.GravityRadiusFactor, false)

	d := 100.0
	rocketID := addRocket(ecs, types.Point{X: 400 + d, Y: 300}, types.Point{X: 400 + d, Y: 580}, 0)
	ecs.Positions[rocketID].Y = 300

	s.Update()

	reach := 2 * 76.0
	expectedPull := (reach - d) / reach * config.GravityPullConstant
	pos := ecs.Positions[rocketID]
	require.Contains(t, ecs.Rockets, rocketID)
	assert.InDelta(t, 400+d-expectedPull, pos.X, 1e-9, "rocket must be displaced toward the center")
	assert.InDelta(t, 300.0, pos.Y, 1e-9)

	// Траектория смещается целиком, иначе интерполяция отменит притяжение.
	rocket := ecs.Rockets[rocketID]
	assert.InDelta(t, 400+d-expectedPull, rocket.Start.X, 1e-9)
	assert.InDelta(t, 400+d-expectedPull, rocket.Target.X, 1e-9)
}

func TestGravity_ZeroDistanceGuard(t *testing.T) {
	ecs := newWorld()
	s := NewExplosionSystem(ecs, event.NewDispatcher())

	// Ракета ровно в центре взрыва: притяжение пропускается, деление на
	// ноль не должно отравить NaN-ом ни позицию, ни вторичный взрыв.
	center := types.Point{X: 400, Y: 300}
	addExplosion(ecs, component.ExplosionGravity, center, 5, config.StandardExplosionRadius*config.GravityRadiusFactor, true)

	rocketID := addRocket(ecs, center, types.Point{X: center.X, Y: 580}, 0)
	ecs.Positions[rocketID].Y = center.Y

	s.Update()

	assert.NotContains(t, ecs.Rockets, rocketID, "rocket at the center is still inside the kill radius")
	secondaries := 0
	for _, e := range ecs.Explosions {
		if e.Kind == component.ExplosionSecondary {
			secondaries++
			assert.False(t, math.IsNaN(e.Center.X), "zero distance must not produce NaN")
			assert.False(t, math.IsNaN(e.Center.Y))
			assert.Equal(t, center, e.Center)
		}
	}
	assert.Equal(t, 1, secondaries)
}

func TestGravity_StandardExplosionDoesNotPull(t *testing.T) {
	ecs := newWorld()
	s := NewExplosionSystem(ecs, event.NewDispatcher())

	addExplosion(ecs, component.ExplosionStandard, types.Point{X: 400, Y: 300}, 30, config.StandardExplosionRadius, false)
	rocketID := addRocket(ecs, types.Point{X: 450, Y: 0}, types.Point{X: 450, Y: 580}, 0)
	ecs.Positions[rocketID].Y = 300

	s.Update()

	assert.Equal(t, 450.0, ecs.Positions[rocketID].X, "standard explosions must not pull rockets")
}

func TestGravity_PullThenKillSameTick(t *testing.T) {
	ecs := newWorld()
	s := NewExplosionSystem(ecs, event.NewDispatcher())

	center := types.Point{X: 400, Y: 300}
	addExplosion(ecs, component.ExplosionGravity, center, 80, config.StandardExplosionRadius*config.GravityRadiusFactor, false)

	// После тика сжатия радиус 76. Ракета на 77 от центра: вне зоны
	// поражения до притяжения, внутри — после.
	rocketID := addRocket(ecs, types.Point{X: 477, Y: 0}, types.Point{X: 477, Y: 580}, 0)
	ecs.Positions[rocketID].Y = 300

	s.Update()

	assert.NotContains(t, ecs.Rockets, rocketID, "kill test runs against post-pull positions")
	assert.Equal(t, config.RocketKillScore, ecs.GameState.Score)
}
