// internal/app/game.go
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
)

// Game владеет миром симуляции и продвигает его строго по одному тику.
// Команды ставятся в очередь и применяются между тиками: тик атомарен
// по отношению к приёму команд.
type Game struct {
	ECS             *entity.ECS
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	ExplosionSystem *system.ExplosionSystem
	StateSystem     *system.StateSystem
	RenderSystem    *system.RenderSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	log zerolog.Logger

	mu      sync.Mutex
	pending []command
}

// NewGame создаёт игру с сидом 0 (время). Для воспроизводимых прогонов
// используйте NewGameSeeded.
func NewGame(log zerolog.Logger) *Game {
	return NewGameSeeded(log, 0)
}

func NewGameSeeded(log zerolog.Logger, seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
		log:             log,
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, g.Rng)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.ExplosionSystem = system.NewExplosionSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.CityDestroyed, listener)
	eventDispatcher.Subscribe(event.BatteryDestroyed, listener)
	eventDispatcher.Subscribe(event.StatusChanged, listener)
	eventDispatcher.Subscribe(event.RocketDestroyed, listener)

	return g
}

// Step продвигает мир на один тик: сперва применяются накопленные
// команды, затем — пока игра идёт — фазы симуляции в фиксированном
// порядке. Проверка статуса выполняется последней, по итогам тика.
func (g *Game) Step() {
	for _, cmd := range g.drain() {
		g.apply(cmd)
	}

	if g.ECS.GameState.Status != component.StatusPlaying {
		return
	}

	g.SpawnSystem.Update()
	g.MovementSystem.Update()
	g.ExplosionSystem.Update()
	g.StateSystem.Update()
	g.ECS.Tick++
}

func (g *Game) drain() []command {
	g.mu.Lock()
	defer g.mu.Unlock()
	cmds := g.pending
	g.pending = nil
	return cmds
}

func (g *Game) enqueue(cmd command) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, cmd)
}

func (g *Game) apply(cmd command) {
	status := g.ECS.GameState.Status
	switch cmd.kind {
	case cmdStart:
		if status == component.StatusStart {
			g.resetWorld()
		}
	case cmdRestart:
		if status == component.StatusLost {
			g.resetWorld()
		}
	case cmdAdvanceLevel:
		if status == component.StatusWon {
			g.advanceLevel()
		}
	case cmdFire:
		if status == component.StatusPlaying {
			g.fire(cmd.target, cmd.gravity)
		}
	case cmdAreaClear:
		if status == component.StatusPlaying {
			g.areaClear()
		}
	}
}

// resetWorld полностью пересоздаёт мир: уровень, очки и все сущности.
func (g *Game) resetWorld() {
	ecs := g.ECS
	for _, id := range system.SortedIDs(ecs.Positions) {
		ecs.RemoveEntity(id)
	}
	gs := ecs.GameState
	gs.Score = 0
	gs.Level = config.StartLevel
	gs.Status = component.StatusPlaying

	for i := 0; i < config.NumCities; i++ {
		id := ecs.NewEntity()
		ecs.Cities[id] = &component.City{}
		ecs.Positions[id] = &component.Position{X: config.CityXPositions[i], Y: config.CityY}
		ecs.Renderables[id] = &component.Renderable{
			Color:  config.CityColor,
			Radius: config.CityRadius,
		}
	}
	for i := 0; i < config.NumBatteries; i++ {
		id := ecs.NewEntity()
		ecs.Batteries[id] = &component.Battery{Ammo: config.BatteryAmmo}
		ecs.Positions[id] = &component.Position{X: config.BatteryXPositions[i], Y: config.BatteryY}
		ecs.Renderables[id] = &component.Renderable{
			Color:     config.BatteryColor,
			Radius:    config.BatteryRadius,
			HasStroke: true,
		}
	}

	g.log.Info().Int("level", gs.Level).Msg("world reset")
}

// advanceLevel переводит игру на следующий уровень: снаряды и взрывы
// очищаются, батареи восстанавливаются, города сохраняют разрушения,
// очки переносятся.
func (g *Game) advanceLevel() {
	ecs := g.ECS
	for _, id := range system.SortedIDs(ecs.Rockets) {
		ecs.RemoveEntity(id)
	}
	for _, id := range system.SortedIDs(ecs.Missiles) {
		ecs.RemoveEntity(id)
	}
	for _, id := range system.SortedIDs(ecs.Explosions) {
		ecs.RemoveEntity(id)
	}
	for _, id := range system.SortedIDs(ecs.Batteries) {
		battery := ecs.Batteries[id]
		battery.IsDestroyed = false
		battery.Ammo = config.BatteryAmmo
		ecs.Renderables[id].Color = config.BatteryColor
	}

	gs := ecs.GameState
	gs.Level++
	gs.Status = component.StatusPlaying
	g.log.Info().Int("level", gs.Level).Int("score", gs.Score).Msg("level advanced")
}

// GameEventListener логирует ключевые события симуляции.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.CityDestroyed:
		l.game.log.Info().Uint64("entity", uint64(e.Data.(types.EntityID))).Msg("city destroyed")
	case event.BatteryDestroyed:
		l.game.log.Info().Uint64("entity", uint64(e.Data.(types.EntityID))).Msg("battery destroyed")
	case event.StatusChanged:
		l.game.log.Info().Stringer("status", e.Data.(component.Status)).Msg("status changed")
	case event.RocketDestroyed:
		l.game.log.Debug().Uint64("entity", uint64(e.Data.(types.EntityID))).Msg("rocket destroyed")
	}
}
