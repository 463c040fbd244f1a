package mutagens

import (
	"go/ast"
	"go/token"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// Logical swaps && and ||.
func Logical() *Mutagen {
	return &Mutagen{id: "logical-operator", kind: m.KindLogical, level: m.LevelBasic, propose: proposeLogical}
}

func proposeLogical(n ast.Node, _ syntax.SemanticModel) ([]m.Mutation, error) {
	binExpr, ok := n.(*ast.BinaryExpr)
	if !ok {
		return nil, nil
	}

	switch binExpr.Op {
	case token.LAND:
		return []m.Mutation{swapBinaryOp(binExpr, token.LOR, m.KindLogical)}, nil
	case token.LOR:
		return []m.Mutation{swapBinaryOp(binExpr, token.LAND, m.KindLogical)}, nil
	default:
		return nil, nil
	}
}
