package mutagens

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// Number increments integer and float literals by one. The shift never
// produces zero, so literal divisors stay valid.
func Number() *Mutagen {
	return &Mutagen{id: "number-literal", kind: m.KindNumber, level: m.LevelComplete, propose: proposeNumber}
}

func proposeNumber(n ast.Node, sem syntax.SemanticModel) ([]m.Mutation, error) {
	lit, ok := n.(*ast.BasicLit)
	if !ok || (lit.Kind != token.INT && lit.Kind != token.FLOAT) {
		return nil, nil
	}

	value := constant.MakeFromLiteral(lit.Value, lit.Kind, 0)
	if value.Kind() == constant.Unknown {
		return nil, nil
	}

	shifted := constant.BinaryOp(value, token.ADD, constant.MakeInt64(1))
	if !syntax.Fits(shifted, sem.TypeOf(lit)) {
		return nil, nil
	}

	text := shifted.ExactString()
	if lit.Kind == token.FLOAT {
		text = floatLiteral(shifted)
	}

	return []m.Mutation{{
		Kind:        m.KindNumber,
		Original:    lit,
		Replacement: &ast.BasicLit{Kind: lit.Kind, Value: text},
		Description: fmt.Sprintf("replace %s with %s", lit.Value, text),
	}}, nil
}

// floatLiteral formats v so it still parses as a float literal.
func floatLiteral(v constant.Value) string {
	f, _ := constant.Float64Val(v)
	text := constant.MakeFloat64(f).String()

	for _, c := range text {
		if c == '.' || c == 'e' || c == 'E' {
			return text
		}
	}

	return text + ".0"
}
