package tetris

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Screen size needed for the board plus the side panel.
const (
	minScreenW = 46
	minScreenH = 23
)

var configPath string

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// Game adapts an Engine to the platform: it maps actions to intents, runs the
// drop scheduler on the fixed tick and times the lines-cleared effect.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.TetrisConfig
	store   core.HighScoreStore

	engine  *Engine
	sched   DropScheduler
	tickDur time.Duration
	tick    uint64

	// Lines-cleared effect
	effectLeft  time.Duration
	effectLines int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Tetris" }

// AttachHighScores sets the store behind the high-score list.
func (g *Game) AttachHighScores(store core.HighScoreStore) {
	g.store = store
	if g.engine != nil {
		g.engine.highScores = NewHighScores(store, HighScoreKey)
	}
}

// Reset prepares a new engine on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.cfg = loadConfig()

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickDur = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.sched = DropScheduler{}
	g.effectLeft = 0
	g.effectLines = 0

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.engine = NewEngine(rng, NewHighScores(g.store, HighScoreKey))
	g.engine.OnEvent(g.onEvent)

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// loadConfig reads the presentation settings, falling back to the defaults
// when the file is unusable.
func loadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(configPath)
	if err == nil {
		err = checkPalette(cfg.Palette)
	}
	if err != nil {
		logger.Warn("using default config", "err", err)
		return config.DefaultTetrisConfig()
	}
	return cfg
}

// checkPalette rejects palette entries that do not name a piece.
func checkPalette(p config.PaletteConfig) error {
	var errs []error
	for piece := range p {
		if _, ok := ParseKind(piece); !ok {
			errs = append(errs, fmt.Errorf("palette.%s: unknown piece", piece))
		}
	}
	return errors.Join(errs...)
}

// Resize updates the layout without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

func (g *Game) onEvent(ev Event) {
	switch ev.Kind {
	case EventLinesCleared:
		g.effectLines = ev.Lines
		g.effectLeft = time.Duration(g.cfg.Effects.LinesClearedMS) * time.Millisecond
	case EventStarted:
		g.effectLines = 0
		g.effectLeft = 0
	case EventMoved, EventRotated:
		return
	}
	logger.Debug("tetris event",
		"kind", ev.Kind,
		"lines", ev.Lines,
		"score", ev.Score,
		"level", ev.Level,
		"lives", ev.Lives,
		"phase", ev.Phase,
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		// Freeze a running session while the board cannot be shown.
		if g.engine.Phase() == PhaseRunning {
			g.engine.TogglePause()
		}
		g.syncScheduler()
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		g.apply(a)
		g.syncScheduler()
	}

	g.sched.Advance(g.tickDur)
	for g.sched.Fire() {
		g.engine.Move(DirDown)
		g.syncScheduler()
	}

	g.updateEffect()

	return core.StepResult{State: g.State()}
}

// apply forwards one action to the engine.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionStart:
		if p := g.engine.Phase(); p == PhaseIdle || p == PhaseGameOver {
			g.engine.Start()
		}
	case core.ActionRestart:
		if g.engine.Phase() != PhaseIdle {
			g.engine.Start()
		}
	case core.ActionPause:
		g.engine.TogglePause()
	case core.ActionLeft:
		g.engine.Move(DirLeft)
	case core.ActionRight:
		g.engine.Move(DirRight)
	case core.ActionSoftDrop:
		g.engine.Move(DirDown)
	case core.ActionRotate:
		g.engine.Rotate()
	case core.ActionHardDrop:
		g.engine.HardDrop()
	}
}

func (g *Game) syncScheduler() {
	g.sched.Sync(g.engine.Phase(), g.engine.DropInterval())
}

// updateEffect runs down the lines-cleared effect and acknowledges the flag
// once it has been shown.
func (g *Game) updateEffect() {
	if g.effectLines == 0 {
		return
	}
	if g.engine.Phase() == PhasePaused {
		return
	}
	g.effectLeft -= g.tickDur
	if g.effectLeft <= 0 {
		g.effectLeft = 0
		g.effectLines = 0
		g.engine.ClearLinesClearedFlag()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.engine.Phase()
	return core.GameState{
		Score:    g.engine.Score(),
		Started:  phase != PhaseIdle,
		GameOver: phase == PhaseGameOver,
		Paused:   phase == PhasePaused || g.tooSmall,
	}
}

// Snapshot returns the engine state for rendering and tests.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/A →/D: Move | ↑/W: Rotate | ↓/S: Soft drop | Space: Drop | P: Pause | R: Restart | Q: Quit"
}
