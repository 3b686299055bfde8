// internal/system/state.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

// StateSystem проверяет условия победы и поражения один раз за тик,
// после обновления всех сущностей.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *StateSystem) Update() {
	gs := s.ecs.GameState
	if gs.Status != component.StatusPlaying {
		return
	}

	// Победа проверяется раньше поражения: тик, в котором выполняются
	// оба условия, засчитывается как победа.
	if gs.Score >= gs.Level*config.WinScorePerLevel {
		gs.Status = component.StatusWon
		s.eventDispatcher.Dispatch(event.Event{Type: event.StatusChanged, Data: gs.Status})
		return
	}

	if s.allBatteriesDestroyed() {
		gs.Status = component.StatusLost
		s.eventDispatcher.Dispatch(event.Event{Type: event.StatusChanged, Data: gs.Status})
	}
}

// Уничтожение городов к поражению не ведёт — только потеря всех батарей.
func (s *StateSystem) allBatteriesDestroyed() bool {
	for _, battery := range s.ecs.Batteries {
		if !battery.IsDestroyed {
			return false
		}
	}
	return true
}
