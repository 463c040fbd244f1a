package mutagens

import (
	"go/ast"
	"go/token"
	"strconv"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

const filler = "mutor"

// String empties string literals and fills empty ones.
func String() *Mutagen {
	return &Mutagen{id: "string-literal", kind: m.KindString, level: m.LevelStandard, propose: proposeString}
}

func proposeString(n ast.Node, _ syntax.SemanticModel) ([]m.Mutation, error) {
	lit, ok := n.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return nil, nil
	}

	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return nil, nil
	}

	replacement, description := `""`, "empty string literal"
	if value == "" {
		replacement, description = strconv.Quote(filler), "fill empty string literal"
	}

	return []m.Mutation{{
		Kind:        m.KindString,
		Original:    lit,
		Replacement: &ast.BasicLit{Kind: token.STRING, Value: replacement},
		Description: description,
	}}, nil
}
