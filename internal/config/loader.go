package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const configFile = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseTetris(data)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTetris(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parseTetris(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTetris decodes data over the defaults and validates the result.
func parseTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports settings the renderer cannot use.
func (c TetrisConfig) Validate() error {
	var errs []error
	if utf8.RuneCountInString(c.Board.Block) != 2 {
		errs = append(errs, fmt.Errorf("board.block must be 2 characters, got %q", c.Board.Block))
	}
	if utf8.RuneCountInString(c.Board.Empty) != 2 {
		errs = append(errs, fmt.Errorf("board.empty must be 2 characters, got %q", c.Board.Empty))
	}
	if c.Board.Ghost != "" && utf8.RuneCountInString(c.Board.Ghost) != 2 {
		errs = append(errs, fmt.Errorf("board.ghost must be 2 characters or empty, got %q", c.Board.Ghost))
	}
	for piece, name := range c.Palette {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("palette.%s: unknown color %q", piece, name))
		}
	}
	if c.Effects.LinesClearedMS < 0 {
		errs = append(errs, fmt.Errorf("effects.lines_cleared_ms must not be negative"))
	}
	return errors.Join(errs...)
}

// Color returns the configured color for a piece letter.
func (c TetrisConfig) Color(piece string) core.Color {
	if col, ok := core.ParseColor(c.Palette[piece]); ok {
		return col
	}
	return core.ColorDefault
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
