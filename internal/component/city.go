// internal/component/city.go
package component

// City — защищаемый город. Восстанавливается только при новой игре.
type City struct {
	IsDestroyed bool
}
