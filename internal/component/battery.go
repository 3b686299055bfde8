// internal/component/battery.go
package component

// Battery — пусковая установка игрока. Восстанавливается в начале
// каждого уровня, в отличие от городов.
type Battery struct {
	Ammo        int // счётчик для отображения, стрельбу не ограничивает
	IsDestroyed bool
}
