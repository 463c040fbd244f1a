package mutagens

import (
	"fmt"
	"go/ast"
	"go/token"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// Branch forces if conditions to true or false, negates them, and forces
// loop conditions to false. The mutation targets the condition expression.
func Branch() *Mutagen {
	return &Mutagen{id: "branch-condition", kind: m.KindBranch, level: m.LevelStandard, propose: proposeBranch}
}

func proposeBranch(n ast.Node, _ syntax.SemanticModel) ([]m.Mutation, error) {
	switch stmt := n.(type) {
	case *ast.IfStmt:
		return ifMutations(stmt.Cond), nil
	case *ast.ForStmt:
		if stmt.Cond == nil || identName(stmt.Cond) == falseStr {
			return nil, nil
		}

		return []m.Mutation{forceCondition(stmt.Cond, falseStr)}, nil
	default:
		return nil, nil
	}
}

func ifMutations(cond ast.Expr) []m.Mutation {
	if cond == nil {
		return nil
	}

	var mutations []m.Mutation

	for _, forced := range []string{trueStr, falseStr} {
		if identName(cond) == forced {
			continue
		}

		mutations = append(mutations, forceCondition(cond, forced))
	}

	negated := &ast.UnaryExpr{Op: token.NOT, X: &ast.ParenExpr{X: syntax.Clone(cond)}}
	mutations = append(mutations, m.Mutation{
		Kind:        m.KindBranch,
		Original:    cond,
		Replacement: negated,
		Description: "negate condition",
	})

	return mutations
}

func forceCondition(cond ast.Expr, value string) m.Mutation {
	return m.Mutation{
		Kind:        m.KindBranch,
		Original:    cond,
		Replacement: ast.NewIdent(value),
		Description: fmt.Sprintf("force condition to %s", value),
	}
}
