package mutagens

import (
	"fmt"
	"go/ast"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// Boolean flips the predeclared boolean literals.
func Boolean() *Mutagen {
	return &Mutagen{id: "boolean-literal", kind: m.KindBoolean, level: m.LevelBasic, propose: proposeBoolean}
}

func proposeBoolean(n ast.Node, sem syntax.SemanticModel) ([]m.Mutation, error) {
	ident, ok := n.(*ast.Ident)
	if !ok || !isBooleanLiteral(ident.Name) {
		return nil, nil
	}

	// A local named true or false shadows the literal.
	if obj := sem.ObjectOf(ident); obj != nil && !syntax.IsUniverse(obj, ident.Name) {
		return nil, nil
	}

	mutated := flipBoolean(ident.Name)

	return []m.Mutation{{
		Kind:        m.KindBoolean,
		Original:    ident,
		Replacement: ast.NewIdent(mutated),
		Description: fmt.Sprintf("replace %s with %s", ident.Name, mutated),
	}}, nil
}

// isBooleanLiteral checks if a string is a boolean literal.
func isBooleanLiteral(name string) bool {
	return name == trueStr || name == falseStr
}

// flipBoolean returns the opposite boolean literal.
func flipBoolean(original string) string {
	if original == trueStr {
		return falseStr
	}

	return trueStr
}
