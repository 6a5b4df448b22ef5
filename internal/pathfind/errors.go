package pathfind

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
)

// ErrInvalidQuery is wrapped by every precondition failure.
var ErrInvalidQuery = errors.New("pathfind: invalid query")

// Precondition failures, each wrapping ErrInvalidQuery.
var (
	ErrMissingEndpoint = fmt.Errorf("%w: start and end must both be set", ErrInvalidQuery)
	ErrSameEndpoints   = fmt.Errorf("%w: start and end are the same cell", ErrInvalidQuery)
	ErrOutOfBounds     = fmt.Errorf("%w: cell out of bounds", ErrInvalidQuery)
	ErrBlockedEndpoint = fmt.Errorf("%w: endpoint is an obstacle", ErrInvalidQuery)
)

// Validate checks the search preconditions for a size x size grid.
func Validate(start, end core.Cell, obstacles core.CellSet, size int) error {
	if !core.InBounds(start, size) {
		return fmt.Errorf("%w: start %v on %dx%d grid", ErrOutOfBounds, start, size, size)
	}
	if !core.InBounds(end, size) {
		return fmt.Errorf("%w: end %v on %dx%d grid", ErrOutOfBounds, end, size, size)
	}
	if start == end {
		return fmt.Errorf("%w: %v", ErrSameEndpoints, start)
	}
	if obstacles.Has(start) {
		return fmt.Errorf("%w: start %v", ErrBlockedEndpoint, start)
	}
	if obstacles.Has(end) {
		return fmt.Errorf("%w: end %v", ErrBlockedEndpoint, end)
	}
	return nil
}
