package mutagens

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

var assignmentSwaps = map[token.Token]token.Token{
	token.ADD_ASSIGN:     token.SUB_ASSIGN,
	token.SUB_ASSIGN:     token.ADD_ASSIGN,
	token.MUL_ASSIGN:     token.QUO_ASSIGN,
	token.QUO_ASSIGN:     token.MUL_ASSIGN,
	token.REM_ASSIGN:     token.MUL_ASSIGN,
	token.AND_ASSIGN:     token.OR_ASSIGN,
	token.OR_ASSIGN:      token.AND_ASSIGN,
	token.XOR_ASSIGN:     token.AND_ASSIGN,
	token.SHL_ASSIGN:     token.SHR_ASSIGN,
	token.SHR_ASSIGN:     token.SHL_ASSIGN,
	token.AND_NOT_ASSIGN: token.AND_ASSIGN,
}

// Assignment swaps a compound assignment operator for its counterpart.
func Assignment() *Mutagen {
	return &Mutagen{id: "compound-assignment", kind: m.KindAssignment, level: m.LevelStandard, propose: proposeAssignment}
}

func proposeAssignment(n ast.Node, sem syntax.SemanticModel) ([]m.Mutation, error) {
	stmt, ok := n.(*ast.AssignStmt)
	if !ok || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
		return nil, nil
	}

	swapped, ok := assignmentSwaps[stmt.Tok]
	if !ok {
		return nil, nil
	}

	if flags, known := basicFlags(sem, stmt.Lhs[0]); known && flags&types.IsString != 0 {
		return nil, nil
	}

	if swapped == token.QUO_ASSIGN && isConstantZero(sem, stmt.Rhs[0]) {
		return nil, nil
	}

	replacement := syntax.Clone(stmt)
	replacement.Tok = swapped

	return []m.Mutation{{
		Kind:        m.KindAssignment,
		Original:    stmt,
		Replacement: replacement,
		Description: fmt.Sprintf("replace %s with %s", stmt.Tok, swapped),
	}}, nil
}
