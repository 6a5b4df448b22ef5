package pathfind

import "github.com/vovakirdan/tui-pathfinder/internal/core"

// Options defines parameters for a search.
type Options struct {
	Size      int
	Heuristic Heuristic
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithSize sets the grid edge length. Non-positive values keep the default.
func WithSize(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.Size = size
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

func buildOptions(opts []Option) Options {
	o := Options{
		Size:      core.GridSize,
		Heuristic: Manhattan,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
