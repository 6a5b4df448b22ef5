package layouts

import (
	"embed"
	"fmt"
	"path"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

func init() {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(fmt.Sprintf("layouts: reading built-ins: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("layouts: reading %s: %v", e.Name(), err))
		}
		l, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("layouts: built-in %s: %v", e.Name(), err))
		}
		Register(l)
	}
}
