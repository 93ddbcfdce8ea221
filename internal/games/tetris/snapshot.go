package tetris

import "time"

// Snapshot is a read-only copy of a session, taken after each step.
type Snapshot struct {
	Grid         Grid          `json:"grid" yaml:"grid"`
	Current      Shape         `json:"current" yaml:"current"`
	Position     Position      `json:"position" yaml:"position"`
	Next         Shape         `json:"next" yaml:"next"`
	Score        int           `json:"score" yaml:"score"`
	Level        int           `json:"level" yaml:"level"`
	Lives        int           `json:"lives" yaml:"lives"`
	LinesCleared int           `json:"lines_cleared" yaml:"lines_cleared"`
	DropInterval time.Duration `json:"drop_interval" yaml:"drop_interval"`
	Phase        Phase         `json:"phase" yaml:"phase"`
	HighScores   []int         `json:"high_scores" yaml:"high_scores"`
}

// Snapshot copies the current session state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:         e.grid,
		Current:      e.current.Clone(),
		Position:     e.pos,
		Next:         e.next.Clone(),
		Score:        e.score,
		Level:        e.level,
		Lives:        e.lives,
		LinesCleared: e.linesCleared,
		DropInterval: e.dropInterval,
		Phase:        e.phase,
		HighScores:   e.highScores.Scores(),
	}
}

// Board returns the grid with the active piece drawn in, as the player sees it.
func (s Snapshot) Board() Grid {
	if s.Current == nil || (s.Phase != PhaseRunning && s.Phase != PhasePaused) {
		return s.Grid
	}
	return Merge(s.Grid, s.Current, s.Position)
}

// Ghost returns where the active piece would land on a hard drop.
func (s Snapshot) Ghost() Position {
	pos := s.Position
	if s.Current == nil {
		return pos
	}
	for !Collides(s.Current, pos.Add(0, 1), s.Grid) {
		pos.Y++
	}
	return pos
}
