package audio

import (
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"
	"testing"
)

func TestNopPlaysNothing(t *testing.T) {
	var svc Service = Nop{}
	if err := svc.PlayExplosion(); err != nil {
		t.Errorf("PlayExplosion() = %v, expected nil", err)
	}
}

// Scenes import this package, so it must stay free of the speaker backend
// and its cgo dependencies.
func TestBoundaryHasNoBackendImports(t *testing.T) {
	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if strings.Contains(path, "gopxl/beep") || strings.Contains(path, "ebitengine/oto") {
				t.Errorf("%s imports %s", name, path)
			}
		}
	}
}
