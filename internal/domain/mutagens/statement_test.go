package mutagens

import (
	"go/ast"
	"testing"
)

func TestStatement(t *testing.T) {
	f := load(t, `package p
func g() {}
func f() {
	g()
	panic("unreachable")
}
`)

	mutations := collect(t, Statement(), f)
	if len(mutations) != 1 {
		t.Fatalf("expected 1 mutation, got %d", len(mutations))
	}

	if _, ok := mutations[0].Original.(*ast.ExprStmt); !ok {
		t.Errorf("expected an expression statement, got %T", mutations[0].Original)
	}

	if _, ok := mutations[0].Replacement.(*ast.BlockStmt); !ok {
		t.Errorf("expected an empty block, got %T", mutations[0].Replacement)
	}

	if mutations[0].Description != "remove call to g" {
		t.Errorf("unexpected description %q", mutations[0].Description)
	}
}
