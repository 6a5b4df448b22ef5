package layouts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Invalid files are skipped. Returns layouts sorted by ID.
func (l *Loader) LoadAll() ([]Layout, error) {
	var found []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLayoutFile(path) {
			return nil
		}

		layout, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		found = append(found, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("layouts: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].ID < found[j].ID
	})
	return found, nil
}

// LoadFile loads a single layout file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: reading file %s: %w", path, err)
	}

	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: parsing file %s: %w", path, err)
	}
	l.FilePath = path
	return l, nil
}

// Resolve returns the registered layout named ref, or loads ref as a file.
func Resolve(ref string) (Layout, error) {
	if Exists(ref) {
		return Get(ref)
	}
	if isLayoutFile(ref) {
		return LoadFile(ref)
	}
	return Layout{}, fmt.Errorf("layouts: unknown layout %q", ref)
}

func isLayoutFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
