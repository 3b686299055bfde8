// internal/component/game_state.go
package component

// Status — фаза игры.
type Status int

const (
	StatusStart Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusWon:
		return "WON"
	case StatusLost:
		return "LOST"
	}
	return "UNKNOWN"
}

// GameState — агрегатное состояние игры: очки, статус и номер уровня.
type GameState struct {
	Status Status
	Score  int
	Level  int
}
