package mutagens

import (
	"fmt"
	"go/ast"
	"go/token"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// Unary drops a negation, logical not or bitwise complement.
func Unary() *Mutagen {
	return &Mutagen{id: "unary-operator", kind: m.KindUnary, level: m.LevelStandard, propose: proposeUnary}
}

func proposeUnary(n ast.Node, sem syntax.SemanticModel) ([]m.Mutation, error) {
	unary, ok := n.(*ast.UnaryExpr)
	if !ok {
		return nil, nil
	}

	if unary.Op != token.NOT && unary.Op != token.SUB && unary.Op != token.XOR {
		return nil, nil
	}

	// -128 fits an int8, 128 does not.
	if !syntax.Fits(sem.ConstantValue(unary.X), sem.TypeOf(unary)) {
		return nil, nil
	}

	return []m.Mutation{{
		Kind:        m.KindUnary,
		Original:    unary,
		Replacement: syntax.Clone(unary.X),
		Description: fmt.Sprintf("remove unary %s", unary.Op),
	}}, nil
}
