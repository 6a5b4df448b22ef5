package layouts

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered layout.
type Info struct {
	ID   string
	Name string
	Size int
}

var (
	registered = make(map[string]Layout)
	mu         sync.RWMutex
)

// Register adds a layout to the registry.
// Panics if a layout with the same ID is already registered.
func Register(l Layout) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[l.ID]; exists {
		panic(fmt.Sprintf("layouts: layout %q already registered", l.ID))
	}
	registered[l.ID] = l
}

// List returns information about all registered layouts, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(registered))
	for id, l := range registered {
		result = append(result, Info{ID: id, Name: l.Name, Size: l.Size})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered layout by ID.
func Get(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := registered[id]
	if !ok {
		return Layout{}, fmt.Errorf("layouts: unknown layout %q", id)
	}
	return l, nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registered[id]
	return ok
}
