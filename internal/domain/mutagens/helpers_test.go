package mutagens

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/printer"
	"go/token"
	"go/types"
	"testing"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

type fixture struct {
	fset *token.FileSet
	file *ast.File
	sem  syntax.SemanticModel
}

// load parses and type-checks src as package p.
func load(t *testing.T, src string) fixture {
	t.Helper()

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "fixture.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}

	info := syntax.NewInfo()
	conf := types.Config{Importer: importer.Default()}

	if _, err := conf.Check("p", fset, []*ast.File{file}, info); err != nil {
		t.Fatalf("failed to type-check fixture: %v", err)
	}

	return fixture{fset: fset, file: file, sem: syntax.NewTypesModel(info)}
}

// collect runs g over every node of the fixture at the complete level.
func collect(t *testing.T, g *Mutagen, f fixture) []m.Mutation {
	t.Helper()

	var mutations []m.Mutation

	ast.Inspect(f.file, func(n ast.Node) bool {
		if n == nil {
			return false
		}

		proposed, err := g.Propose(n, f.sem, m.MutagenOptions{Level: m.LevelComplete})
		if err != nil {
			t.Fatalf("unexpected error from %s: %v", g.ID(), err)
		}

		mutations = append(mutations, proposed...)

		return true
	})

	return mutations
}

// render prints a node back to source text.
func render(t *testing.T, n ast.Node) string {
	t.Helper()

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), n); err != nil {
		t.Fatalf("failed to print node: %v", err)
	}

	return buf.String()
}

func replacements(t *testing.T, mutations []m.Mutation) []string {
	t.Helper()

	out := make([]string, 0, len(mutations))
	for _, mut := range mutations {
		out = append(out, render(t, mut.Replacement))
	}

	return out
}

func assertReplacements(t *testing.T, got []m.Mutation, want ...string) {
	t.Helper()

	rendered := replacements(t, got)
	if len(rendered) != len(want) {
		t.Fatalf("expected %d mutations %v, got %d %v", len(want), want, len(rendered), rendered)
	}

	for i := range want {
		if rendered[i] != want[i] {
			t.Errorf("mutation %d: expected %q, got %q", i, want[i], rendered[i])
		}
	}
}
