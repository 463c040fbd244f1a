package mutagens

import (
	"go/ast"
	"go/token"
	"go/types"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

var arithmeticOps = []token.Token{token.ADD, token.SUB, token.MUL, token.QUO, token.REM}

// Arithmetic swaps an arithmetic operator for each of the others.
func Arithmetic() *Mutagen {
	return &Mutagen{id: "arithmetic-operator", kind: m.KindArithmetic, level: m.LevelBasic, propose: proposeArithmetic}
}

func proposeArithmetic(n ast.Node, sem syntax.SemanticModel) ([]m.Mutation, error) {
	binExpr, ok := n.(*ast.BinaryExpr)
	if !ok || !isArithmeticOp(binExpr.Op) {
		return nil, nil
	}

	flags, known := basicFlags(sem, binExpr)
	if known && flags&types.IsNumeric == 0 {
		// string concatenation
		return nil, nil
	}

	integer := !known || flags&types.IsInteger != 0

	var mutations []m.Mutation

	for _, op := range alternatives(binExpr.Op, arithmeticOps) {
		if op == token.REM && !integer {
			continue
		}

		if !foldsCleanly(sem, binExpr, op) {
			continue
		}

		mutations = append(mutations, swapBinaryOp(binExpr, op, m.KindArithmetic))
	}

	return mutations, nil
}

// isArithmeticOp checks if a token is an arithmetic operator.
func isArithmeticOp(op token.Token) bool {
	return op == token.ADD || op == token.SUB || op == token.MUL || op == token.QUO || op == token.REM
}
