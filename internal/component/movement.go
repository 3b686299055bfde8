// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}
