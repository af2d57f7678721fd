package floodfill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfill/colorgraph"
)

// ErrUnknownMode is returned by Fill for an unsupported Mode.
var ErrUnknownMode = errors.New("floodfill: unknown traversal mode")

// Mode selects the traversal used by Fill.
type Mode int

const (
	// ModeBFS recolors in breadth-first (level) order.
	ModeBFS Mode = iota
	// ModeDFS recolors in depth-first order.
	ModeDFS
)

// String returns "bfs" or "dfs".
func (m Mode) String() string {
	switch m {
	case ModeBFS:
		return "bfs"
	case ModeDFS:
		return "dfs"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "bfs" and "dfs" to their Mode, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "bfs":
		return ModeBFS, nil
	case "dfs":
		return ModeDFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Option configures a flood fill via functional arguments.
type Option func(*Options)

// Options holds the hooks of a flood fill.
type Options struct {
	// OnRecolor is called right after v is recolored. depth is the number
	// of edges between v and the seed in the traversal tree.
	OnRecolor func(v *colorgraph.Vertex, depth int)
}

// DefaultOptions returns Options with a no-op OnRecolor.
func DefaultOptions() Options {
	return Options{
		OnRecolor: func(*colorgraph.Vertex, int) {},
	}
}

// WithOnRecolor registers a callback fired after each recolor.
func WithOnRecolor(fn func(v *colorgraph.Vertex, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRecolor = fn
		}
	}
}
