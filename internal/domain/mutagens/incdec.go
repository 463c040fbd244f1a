package mutagens

import (
	"fmt"
	"go/ast"
	"go/token"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// IncDec swaps ++ and --.
func IncDec() *Mutagen {
	return &Mutagen{id: "inc-dec", kind: m.KindIncDec, level: m.LevelStandard, propose: proposeIncDec}
}

func proposeIncDec(n ast.Node, _ syntax.SemanticModel) ([]m.Mutation, error) {
	stmt, ok := n.(*ast.IncDecStmt)
	if !ok {
		return nil, nil
	}

	replacement := syntax.Clone(stmt)
	if stmt.Tok == token.INC {
		replacement.Tok = token.DEC
	} else {
		replacement.Tok = token.INC
	}

	return []m.Mutation{{
		Kind:        m.KindIncDec,
		Original:    stmt,
		Replacement: replacement,
		Description: fmt.Sprintf("replace %s with %s", stmt.Tok, replacement.Tok),
	}}, nil
}
