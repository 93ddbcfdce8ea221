package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Block: "██",
			Empty: " .",
			Ghost: "░░",
		},
		Palette: PaletteConfig{
			"I": "pale_pink",
			"O": "light_pink",
			"T": "pink",
			"S": "hot_pink",
			"Z": "deep_pink",
			"J": "dark_pink",
			"L": "plum",
		},
		Effects: EffectsConfig{
			LinesClearedMS: 500,
		},
	}
}
