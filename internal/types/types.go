// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
type EntityID uint64

// Point — точка в логическом игровом пространстве (800×600).
type Point struct {
	X, Y float64
}
