package mutagens

import (
	"fmt"
	"go/ast"
	"go/types"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// Statement removes call statements, except calls to the builtin panic.
func Statement() *Mutagen {
	return &Mutagen{id: "remove-call", kind: m.KindStatement, level: m.LevelComplete, propose: proposeStatement}
}

func proposeStatement(n ast.Node, sem syntax.SemanticModel) ([]m.Mutation, error) {
	stmt, ok := n.(*ast.ExprStmt)
	if !ok {
		return nil, nil
	}

	call, ok := stmt.X.(*ast.CallExpr)
	if !ok || isPanic(sem, call) {
		return nil, nil
	}

	return []m.Mutation{{
		Kind:        m.KindStatement,
		Original:    stmt,
		Replacement: &ast.BlockStmt{},
		Description: fmt.Sprintf("remove call to %s", callee(call)),
	}}, nil
}

func isPanic(sem syntax.SemanticModel, call *ast.CallExpr) bool {
	ident, ok := call.Fun.(*ast.Ident)
	if !ok || ident.Name != "panic" {
		return false
	}

	obj := sem.ObjectOf(ident)
	if obj == nil {
		return true
	}

	_, builtin := obj.(*types.Builtin)

	return builtin
}

func callee(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	default:
		return "function"
	}
}
