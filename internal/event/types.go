// internal/event/types.go
package event

const (
	RocketDestroyed  EventType = "RocketDestroyed"  // Ракета сбита взрывом
	RocketImpacted   EventType = "RocketImpacted"   // Ракета долетела до земли
	CityDestroyed    EventType = "CityDestroyed"    // Город уничтожен
	BatteryDestroyed EventType = "BatteryDestroyed" // Батарея уничтожена
	MissileDetonated EventType = "MissileDetonated" // Перехватчик сдетонировал
	MissileFired     EventType = "MissileFired"
	StatusChanged    EventType = "StatusChanged" // Смена фазы игры
)
