package mutagens

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// swapBinaryOp builds the mutation replacing expr's operator with op.
func swapBinaryOp(expr *ast.BinaryExpr, op token.Token, kind m.MutationKind) m.Mutation {
	replacement := syntax.Clone(expr)
	replacement.Op = op

	return m.Mutation{
		Kind:        kind,
		Original:    expr,
		Replacement: replacement,
		Description: fmt.Sprintf("replace %s with %s", expr.Op, op),
	}
}

// alternatives returns every operator of ops except original.
func alternatives(original token.Token, ops []token.Token) []token.Token {
	var out []token.Token

	for _, op := range ops {
		if op != original {
			out = append(out, op)
		}
	}

	return out
}

// basicFlags returns the basic-type flags of expr. known is false when the
// semantic model has no type for it; callers then stay permissive.
func basicFlags(sem syntax.SemanticModel, expr ast.Expr) (flags types.BasicInfo, known bool) {
	t := sem.TypeOf(expr)
	if t == nil {
		return 0, false
	}

	flags, _ = syntax.BasicInfo(t)

	return flags, true
}

// isConstantZero reports whether expr is a constant equal to zero.
func isConstantZero(sem syntax.SemanticModel, expr ast.Expr) bool {
	v := sem.ConstantValue(expr)
	if v == nil {
		return false
	}

	switch v.Kind() {
	case constant.Int, constant.Float, constant.Complex:
		return constant.Sign(v) == 0
	default:
		return false
	}
}

// foldsCleanly reports whether replacing expr's operator with op still
// compiles: no constant division by zero and, when both operands are
// constant, a folded result representable by the expression's type.
func foldsCleanly(sem syntax.SemanticModel, expr *ast.BinaryExpr, op token.Token) bool {
	if (op == token.QUO || op == token.REM) && isConstantZero(sem, expr.Y) {
		return false
	}

	x, y := sem.ConstantValue(expr.X), sem.ConstantValue(expr.Y)
	if x == nil || y == nil {
		return true
	}

	intOperands := x.Kind() == constant.Int && y.Kind() == constant.Int

	var folded constant.Value

	switch {
	case op == token.REM && !intOperands:
		return false
	case op == token.QUO && intOperands:
		folded = constant.BinaryOp(x, token.QUO_ASSIGN, y)
	default:
		folded = constant.BinaryOp(x, op, y)
	}

	return syntax.Fits(folded, sem.TypeOf(expr))
}

func identName(expr ast.Expr) string {
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}

	return ""
}
