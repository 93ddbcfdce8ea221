package tetris

import (
	"math/rand"
	"time"
)

// Rules of a session. They are fixed; only presentation is configurable.
const (
	InitialDropInterval = 1000 * time.Millisecond
	SpeedMultiplier     = 0.8
	InitialLives        = 3
	PointsPerLine       = 100
	PointsPerLevel      = 1000
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Direction is a movement intent.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// kickOffsets are the horizontal nudges tried, in order, when rotating.
var kickOffsets = [...]int{0, -1, 1}

// SpawnPosition is where every new piece enters the board.
func SpawnPosition() Position {
	return Position{X: BoardWidth/2 - 1, Y: -2}
}

// Engine owns one game session and is its only mutator. Intents that are not
// valid for the current phase are silently ignored. An Engine is not safe for
// concurrent use; the platform drives it from a single loop.
type Engine struct {
	rng *rand.Rand

	grid    Grid
	current Shape
	next    Shape
	pos     Position

	score        int
	level        int
	lives        int
	linesCleared int
	dropInterval time.Duration
	phase        Phase

	highScores *HighScores
	observers  []func(Event)
}

// NewEngine creates an idle engine. A nil highScores keeps an in-memory list.
func NewEngine(rng *rand.Rand, highScores *HighScores) *Engine {
	if highScores == nil {
		highScores = NewHighScores(nil, HighScoreKey)
	}
	return &Engine{
		rng:          rng,
		grid:         NewGrid(),
		level:        1,
		lives:        InitialLives,
		dropInterval: InitialDropInterval,
		phase:        PhaseIdle,
		highScores:   highScores,
	}
}

// OnEvent registers an observer called after every state change.
func (e *Engine) OnEvent(fn func(Event)) {
	e.observers = append(e.observers, fn)
}

func (e *Engine) emit(kind EventKind, lines int) {
	if len(e.observers) == 0 {
		return
	}
	ev := Event{
		Kind:  kind,
		Lines: lines,
		Score: e.score,
		Level: e.level,
		Lives: e.lives,
		Phase: e.phase,
	}
	for _, fn := range e.observers {
		fn(ev)
	}
}

// Start begins a fresh session, discarding any previous one.
func (e *Engine) Start() {
	e.grid = NewGrid()
	e.score = 0
	e.level = 1
	e.dropInterval = InitialDropInterval
	e.lives = InitialLives
	e.linesCleared = 0
	e.phase = PhaseRunning
	e.current = RandomShape(e.rng)
	e.next = RandomShape(e.rng)
	e.pos = SpawnPosition()
	e.emit(EventStarted, 0)
}

// Move shifts the active piece one cell. A blocked downward move locks it.
func (e *Engine) Move(dir Direction) {
	if e.phase != PhaseRunning {
		return
	}

	var candidate Position
	switch dir {
	case DirLeft:
		candidate = e.pos.Add(-1, 0)
	case DirRight:
		candidate = e.pos.Add(1, 0)
	case DirDown:
		candidate = e.pos.Add(0, 1)
	default:
		return
	}

	if !Collides(e.current, candidate, e.grid) {
		e.pos = candidate
		e.emit(EventMoved, 0)
		return
	}
	if dir == DirDown {
		e.lock()
	}
}

// Rotate turns the active piece clockwise, nudging it one column left or
// right when the unshifted rotation is blocked. The first offset that fits
// wins; if none fits the piece is unchanged.
func (e *Engine) Rotate() {
	if e.phase != PhaseRunning {
		return
	}

	rotated := Rotate(e.current)
	for _, dx := range kickOffsets {
		candidate := e.pos.Add(dx, 0)
		if !Collides(rotated, candidate, e.grid) {
			e.current = rotated
			e.pos = candidate
			e.emit(EventRotated, 0)
			return
		}
	}
}

// HardDrop drops the active piece as far as it can fall and locks it.
func (e *Engine) HardDrop() {
	if e.phase != PhaseRunning {
		return
	}
	for !Collides(e.current, e.pos.Add(0, 1), e.grid) {
		e.pos.Y++
	}
	e.lock()
}

// TogglePause switches between running and paused.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhaseRunning:
		e.phase = PhasePaused
		e.emit(EventPaused, 0)
	case PhasePaused:
		e.phase = PhaseRunning
		e.emit(EventResumed, 0)
	}
}

// ClearLinesClearedFlag acknowledges the last line clear so one-shot effects
// fire only once.
func (e *Engine) ClearLinesClearedFlag() {
	e.linesCleared = 0
}

// lock merges the active piece into the grid and moves on to the next piece,
// a lost life, or the end of the game.
func (e *Engine) lock() {
	merged := Merge(e.grid, e.current, e.pos)
	cleared, n := ClearLines(merged)
	e.emit(EventLocked, 0)

	if n > 0 {
		// Level is derived from the score as it was before this clear's points.
		prevScore := e.score
		e.linesCleared = n
		e.score += n * PointsPerLine * e.level
		e.level = prevScore/PointsPerLevel + 1
		e.dropInterval = time.Duration(float64(e.dropInterval) * SpeedMultiplier)
		e.emit(EventLinesCleared, n)
	}

	if TopCollision(cleared) {
		if e.lives > 1 {
			e.lives--
			e.grid = NewGrid()
			e.spawnNext()
			e.emit(EventLifeLost, 0)
			return
		}
		e.lives = 0
		e.phase = PhaseGameOver
		e.highScores.Record(e.score)
		e.emit(EventGameOver, 0)
		return
	}

	e.grid = cleared
	e.spawnNext()
}

func (e *Engine) spawnNext() {
	e.current = e.next
	e.next = RandomShape(e.rng)
	e.pos = SpawnPosition()
}

// Phase returns the current lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// DropInterval returns the current automatic drop period.
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// HighScores returns the session's high-score list.
func (e *Engine) HighScores() *HighScores { return e.highScores }
