package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
)

//go:embed defaults/pathfinder.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size: core.GridSize,
		},
		Animation: AnimationConfig{
			TickRate:     60,
			StepMillis:   50,
			ShowExplored: true,
		},
		Glyphs: GlyphConfig{
			Start:    "S",
			End:      "E",
			Wall:     "█",
			Path:     "•",
			Explored: "·",
			Empty:    " ",
			Cursor:   "+",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
