package adapter

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	m "gooze.dev/pkg/mutor/internal/model"
)

const placerSource = `package calc

func Add(a, b int) int {
	return a + b
}
`

func TestTextPlacer_Place(t *testing.T) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "calc.go", placerSource, 0)
	if err != nil {
		t.Fatalf("failed to parse source: %v", err)
	}

	var sum *ast.BinaryExpr

	ast.Inspect(file, func(n ast.Node) bool {
		if expr, ok := n.(*ast.BinaryExpr); ok {
			sum = expr
		}

		return true
	})

	mutant := m.Mutant{
		ID: 0,
		Mutation: m.Mutation{
			Kind:        m.KindArithmetic,
			Original:    sum,
			Replacement: &ast.BinaryExpr{X: ast.NewIdent("a"), Op: token.SUB, Y: ast.NewIdent("b")},
		},
	}

	mutated, err := NewTextPlacer().Place(fset, []byte(placerSource), mutant)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	want := `package calc

func Add(a, b int) int {
	return a - b
}
`
	if string(mutated) != want {
		t.Fatalf("Place() =\n%s\nwant\n%s", mutated, want)
	}
}

func TestTextPlacer_Place_Unplaceable(t *testing.T) {
	fset := token.NewFileSet()

	t.Run("missing replacement", func(t *testing.T) {
		_, err := NewTextPlacer().Place(fset, nil, m.Mutant{Mutation: m.Mutation{Original: ast.NewIdent("x")}})
		if !errors.Is(err, ErrUnplaceable) {
			t.Fatalf("Place() error = %v, want ErrUnplaceable", err)
		}
	})

	t.Run("node without position", func(t *testing.T) {
		mutant := m.Mutant{Mutation: m.Mutation{Original: ast.NewIdent("x"), Replacement: ast.NewIdent("y")}}

		_, err := NewTextPlacer().Place(fset, []byte("package p\n"), mutant)
		if !errors.Is(err, ErrUnplaceable) {
			t.Fatalf("Place() error = %v, want ErrUnplaceable", err)
		}
	})
}
