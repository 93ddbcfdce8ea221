// Package config provides YAML-based presentation settings for the game.
// Rules (board size, speeds, lives) are fixed in the game package.
package config

// TetrisConfig contains the presentation configuration of the game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Palette PaletteConfig `yaml:"palette"`
	Effects EffectsConfig `yaml:"effects"`
}

// BoardConfig defines how board cells are drawn.
type BoardConfig struct {
	Block string `yaml:"block"` // two columns per cell
	Empty string `yaml:"empty"`
	Ghost string `yaml:"ghost"` // empty disables the landing preview
}

// PaletteConfig maps piece letters to color names understood by core.ParseColor.
type PaletteConfig map[string]string

// EffectsConfig defines transient effect durations.
type EffectsConfig struct {
	LinesClearedMS int `yaml:"lines_cleared_ms"`
}
