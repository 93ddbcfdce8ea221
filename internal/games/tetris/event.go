package tetris

// EventKind identifies what changed in a session.
type EventKind int

const (
	EventStarted EventKind = iota
	EventMoved
	EventRotated
	EventLocked
	EventLinesCleared
	EventLifeLost
	EventGameOver
	EventPaused
	EventResumed
)

var eventNames = [...]string{
	EventStarted:      "started",
	EventMoved:        "moved",
	EventRotated:      "rotated",
	EventLocked:       "locked",
	EventLinesCleared: "lines_cleared",
	EventLifeLost:     "life_lost",
	EventGameOver:     "game_over",
	EventPaused:       "paused",
	EventResumed:      "resumed",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is delivered to observers after a state change. The counters are the
// values right after the change.
type Event struct {
	Kind  EventKind
	Lines int
	Score int
	Level int
	Lives int
	Phase Phase
}
