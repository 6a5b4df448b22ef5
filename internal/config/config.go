// Package config provides YAML-based configuration loading for the
// pathfinder visualizer.
package config

import (
	"fmt"
	"unicode/utf8"
)

// Config contains all user-tunable settings.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
	Glyphs    GlyphConfig     `yaml:"glyphs"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size int `yaml:"size"` // Edge length of the square grid
}

// AnimationConfig defines how results are revealed.
type AnimationConfig struct {
	TickRate     int  `yaml:"tick_rate"`     // UI ticks per second
	StepMillis   int  `yaml:"step_ms"`       // Delay between revealed cells
	ShowExplored bool `yaml:"show_explored"` // Reveal explored cells before the path
}

// GlyphConfig defines the characters drawn for each cell kind.
type GlyphConfig struct {
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Wall     string `yaml:"wall"`
	Path     string `yaml:"path"`
	Explored string `yaml:"explored"`
	Empty    string `yaml:"empty"`
	Cursor   string `yaml:"cursor"`
}

// Grid size bounds accepted by Validate and by layout files.
const (
	MinGridSize = 2
	MaxGridSize = 64
)

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Grid.Size < MinGridSize || c.Grid.Size > MaxGridSize {
		return fmt.Errorf("config: grid.size %d outside [%d, %d]", c.Grid.Size, MinGridSize, MaxGridSize)
	}
	if c.Animation.TickRate <= 0 {
		return fmt.Errorf("config: animation.tick_rate must be positive, got %d", c.Animation.TickRate)
	}
	if c.Animation.StepMillis <= 0 {
		return fmt.Errorf("config: animation.step_ms must be positive, got %d", c.Animation.StepMillis)
	}
	glyphs := map[string]string{
		"start":    c.Glyphs.Start,
		"end":      c.Glyphs.End,
		"wall":     c.Glyphs.Wall,
		"path":     c.Glyphs.Path,
		"explored": c.Glyphs.Explored,
		"empty":    c.Glyphs.Empty,
		"cursor":   c.Glyphs.Cursor,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: glyphs.%s must be a single character, got %q", name, g)
		}
	}
	return nil
}

// Rune returns the first rune of a glyph string, or a space if it is empty.
func Rune(glyph string) rune {
	if glyph == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}
