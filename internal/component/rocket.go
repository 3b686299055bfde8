// internal/component/rocket.go
package component

import "go-missile-defense/internal/types"

// Rocket — вражеский снаряд, летящий от верхнего края к цели.
// Текущая позиция интерполируется: Start + (Target-Start)*Progress.
type Rocket struct {
	Start    types.Point
	Target   types.Point
	Progress float64 // [0,1], удаляется при достижении 1
	Speed    float64 // прирост прогресса за тик
}
