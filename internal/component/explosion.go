// internal/component/explosion.go
package component

import "go-missile-defense/internal/types"

// ExplosionKind — явный тип взрыва вместо вывода по величине радиуса.
type ExplosionKind int

const (
	ExplosionStandard ExplosionKind = iota
	ExplosionGravity
	ExplosionSecondary
)

// Explosion — расширяющаяся, затем сжимающаяся зона поражения.
type Explosion struct {
	Kind      ExplosionKind
	Center    types.Point
	Radius    float64
	MaxRadius float64
	Expanding bool
}
