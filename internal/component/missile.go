// internal/component/missile.go
package component

import "go-missile-defense/internal/types"

// Missile — перехватчик игрока. Движется так же, как Rocket.
type Missile struct {
	Start     types.Point
	Target    types.Point
	Progress  float64
	Speed     float64
	BatteryID types.EntityID // батарея, из которой был выпущен
	Gravity   bool           // гравитационная бомба
}
