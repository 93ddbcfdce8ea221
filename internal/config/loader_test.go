package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	cfg, err := parseTetris(defaultTetrisYAML)
	if err != nil {
		t.Fatalf("parseTetris(embedded) error = %v", err)
	}
	def := DefaultTetrisConfig()
	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if cfg.Effects != def.Effects {
		t.Errorf("Effects = %+v, expected %+v", cfg.Effects, def.Effects)
	}
	if len(cfg.Palette) != 7 {
		t.Errorf("len(Palette) = %d, expected 7", len(cfg.Palette))
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultTetrisConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("palette:\n  T: red\neffects:\n  lines_cleared_ms: 250\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Effects.LinesClearedMS != 250 {
		t.Errorf("LinesClearedMS = %d, expected 250", cfg.Effects.LinesClearedMS)
	}
	if got := cfg.Color("T"); got != core.ColorRed {
		t.Errorf("Color(T) = %v, expected red", got)
	}
	// Keys not in the file keep their defaults.
	if got := cfg.Color("I"); got != core.ColorPalePink {
		t.Errorf("Color(I) = %v, expected pale pink", got)
	}
	if cfg.Board.Block != "██" {
		t.Errorf("Board.Block = %q, expected default", cfg.Board.Block)
	}
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadTetris(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("palette:\n  T: ultraviolet\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(bad); err == nil {
		t.Error("LoadTetris(unknown color) expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr bool
	}{
		{"defaults", func(*TetrisConfig) {}, false},
		{"no ghost", func(c *TetrisConfig) { c.Board.Ghost = "" }, false},
		{"one-column block", func(c *TetrisConfig) { c.Board.Block = "#" }, true},
		{"wide empty", func(c *TetrisConfig) { c.Board.Empty = "   " }, true},
		{"negative effect", func(c *TetrisConfig) { c.Effects.LinesClearedMS = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
