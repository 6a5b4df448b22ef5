package layouts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

func TestParse(t *testing.T) {
	data := `
id: tiny
name: Tiny
size: 4
rows:
  - "S.#"
  - "..#"
  - "...E"
`
	l, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if l.ID != "tiny" || l.Name != "Tiny" || l.Size != 4 {
		t.Errorf("header = %q/%q/%d", l.ID, l.Name, l.Size)
	}
	if l.Start == nil || *l.Start != core.C(0, 0) {
		t.Errorf("Start = %v, expected (0,0)", l.Start)
	}
	if l.End == nil || *l.End != core.C(2, 3) {
		t.Errorf("End = %v, expected (2,3)", l.End)
	}
	if l.Obstacles.Len() != 2 || !l.Obstacles.Has(core.C(1, 2)) {
		t.Errorf("Obstacles = %v", l.Obstacles.Sorted())
	}
}

func TestParseDefaults(t *testing.T) {
	l, err := Parse([]byte("id: blank\nrows: []\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if l.Size != core.GridSize {
		t.Errorf("Size = %d, expected %d", l.Size, core.GridSize)
	}
	if l.Name != "blank" {
		t.Errorf("Name = %q, expected id fallback", l.Name)
	}
	if l.Start != nil || l.End != nil {
		t.Error("blank layout should have no endpoints")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing id", "rows: [\"S\"]\n", "missing id"},
		{"negative size", "id: x\nsize: -3\n", "outside"},
		{"size too small", "id: tiny\nsize: 1\nrows: [\"S\"]\n", "size 1 outside [2, 64]"},
		{"size too large", "id: huge\nsize: 100000\nrows: [\"SE\"]\n", "size 100000 outside [2, 64]"},
		{"too many rows", "id: x\nsize: 2\nrows: [\"..\", \"..\", \"..\"]\n", "exceed size"},
		{"row too wide", "id: x\nsize: 2\nrows: [\"...\"]\n", "row 0"},
		{"two starts", "id: x\nsize: 3\nrows: [\"S.S\"]\n", "second start"},
		{"two ends", "id: x\nsize: 3\nrows: [\"E\", \"E\"]\n", "second end"},
		{"unknown glyph", "id: x\nsize: 3\nrows: [\".?.\"]\n", "unknown glyph"},
		{"bad yaml", "id: [", "yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestToGrid(t *testing.T) {
	l, err := Get("column-gap")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	g := l.ToGrid()
	if g.Size() != 5 || !g.Ready() {
		t.Fatalf("grid size %d ready=%v", g.Size(), g.Ready())
	}
	if g.Kind(core.C(1, 2)) != core.KindObstacle {
		t.Error("(1,2) should be a wall")
	}
	if g.Kind(core.C(4, 2)) != core.KindFree {
		t.Error("(4,2) should be the gap")
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	want := []string{"column-gap", "maze", "open", "sealed-row"}

	got := List()
	if len(got) < len(want) {
		t.Fatalf("List() = %v, expected at least %v", got, want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List()[%d] = %q, expected %q", i, got[i].ID, id)
		}
		if !Exists(id) {
			t.Errorf("Exists(%q) = false", id)
		}
	}
}

func TestBuiltinsSolve(t *testing.T) {
	tests := []struct {
		id    string
		found bool
		steps int
	}{
		{"open", true, 38},
		{"column-gap", true, 8},
		{"sealed-row", false, 0},
		{"maze", true, 114},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			l, err := Get(tc.id)
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			path, res, err := pathfind.FindPathOnGrid(l.ToGrid())
			if err != nil {
				t.Fatalf("FindPathOnGrid() failed: %v", err)
			}
			if res.Found != tc.found {
				t.Fatalf("Found = %v, expected %v", res.Found, tc.found)
			}
			if pathfind.Steps(path) != tc.steps {
				t.Errorf("Steps = %d, expected %d", pathfind.Steps(path), tc.steps)
			}
		})
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-layout"); err == nil {
		t.Error("expected error for unknown layout")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register(Layout{ID: "open"})
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}

	files := map[string]string{
		filepath.Join(dir, "b.yaml"):    "id: bravo\nsize: 3\nrows: [\"S.E\"]\n",
		filepath.Join(sub, "a.yml"):     "id: alpha\nsize: 3\nrows: [\"S#E\"]\n",
		filepath.Join(dir, "bad.yaml"):  "id: broken\nsize: 1\nrows: [\"SE\"]\n",
		filepath.Join(dir, "notes.txt"): "not a layout",
	}
	for path, data := range files {
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
	}

	got, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadAll() returned %d layouts, expected 2", len(got))
	}
	if got[0].ID != "alpha" || got[1].ID != "bravo" {
		t.Errorf("LoadAll() order = %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].FilePath == "" {
		t.Error("FilePath should be recorded")
	}
}

func TestResolve(t *testing.T) {
	if l, err := Resolve("maze"); err != nil || l.ID != "maze" {
		t.Errorf("Resolve(maze) = %v, %v", l.ID, err)
	}

	path := filepath.Join(t.TempDir(), "mine.yaml")
	if err := os.WriteFile(path, []byte("id: mine\nsize: 2\nrows: [\"SE\"]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if l, err := Resolve(path); err != nil || l.ID != "mine" {
		t.Errorf("Resolve(file) = %v, %v", l.ID, err)
	}

	if _, err := Resolve("nothing"); err == nil {
		t.Error("expected error for unknown ref")
	}
}
