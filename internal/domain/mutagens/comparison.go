package mutagens

import (
	"go/ast"
	"go/token"
	"go/types"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

var (
	comparisonOps = []token.Token{token.LSS, token.GTR, token.LEQ, token.GEQ, token.EQL, token.NEQ}
	equalityOps   = []token.Token{token.EQL, token.NEQ}
)

// Comparison swaps a comparison operator for each of the others. Operands
// that are not ordered (pointers, structs, interfaces, bools) only swap
// between == and !=.
func Comparison() *Mutagen {
	return &Mutagen{id: "comparison-operator", kind: m.KindComparison, level: m.LevelBasic, propose: proposeComparison}
}

func proposeComparison(n ast.Node, sem syntax.SemanticModel) ([]m.Mutation, error) {
	binExpr, ok := n.(*ast.BinaryExpr)
	if !ok || !isComparisonOp(binExpr.Op) {
		return nil, nil
	}

	ops := comparisonOps
	if !ordered(sem, binExpr.X) || !ordered(sem, binExpr.Y) {
		if binExpr.Op != token.EQL && binExpr.Op != token.NEQ {
			return nil, nil
		}

		ops = equalityOps
	}

	var mutations []m.Mutation

	for _, op := range alternatives(binExpr.Op, ops) {
		mutations = append(mutations, swapBinaryOp(binExpr, op, m.KindComparison))
	}

	return mutations, nil
}

func isComparisonOp(op token.Token) bool {
	return op == token.LSS || op == token.GTR || op == token.LEQ ||
		op == token.GEQ || op == token.EQL || op == token.NEQ
}

// ordered reports whether expr supports <, <=, > and >=. Unknown types are
// assumed ordered.
func ordered(sem syntax.SemanticModel, expr ast.Expr) bool {
	flags, known := basicFlags(sem, expr)
	return !known || flags&types.IsOrdered != 0
}
