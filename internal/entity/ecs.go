// internal/entity/ecs.go
package entity

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/types"
)

type ECS struct {
	Tick        uint64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Renderables map[types.EntityID]*component.Renderable
	Rockets     map[types.EntityID]*component.Rocket
	Missiles    map[types.EntityID]*component.Missile
	Explosions  map[types.EntityID]*component.Explosion
	Cities      map[types.EntityID]*component.City
	Batteries   map[types.EntityID]*component.Battery
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Rockets:     make(map[types.EntityID]*component.Rocket),
		Missiles:    make(map[types.EntityID]*component.Missile),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Cities:      make(map[types.EntityID]*component.City),
		Batteries:   make(map[types.EntityID]*component.Battery),
		GameState: &component.GameState{
			Status: component.StatusStart,
			Level:  config.StartLevel,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех коллекций компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Renderables, id)
	delete(ecs.Rockets, id)
	delete(ecs.Missiles, id)
	delete(ecs.Explosions, id)
	delete(ecs.Cities, id)
	delete(ecs.Batteries, id)
}
