package domain

import (
	"go/ast"
	"go/token"
	"go/types"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
)

// DefaultHandlers returns the built-in dispatch catalogue, most specific first.
func DefaultHandlers() []Entry {
	return []Entry{
		{Name: "comment", Kind: syntax.KindComment, Handler: skip},
		{Name: "import-decl", Kind: syntax.KindGenDecl, Guard: genDeclOf(token.IMPORT), Handler: skip},
		{Name: "import-spec", Kind: syntax.KindImportSpec, Handler: skip},
		{Name: "const-decl", Kind: syntax.KindGenDecl, Guard: genDeclOf(token.CONST), Handler: skip},
		{Name: "type-decl", Kind: syntax.KindGenDecl, Guard: genDeclOf(token.TYPE), Handler: skip},
		{Name: "type-spec", Kind: syntax.KindTypeSpec, Handler: skip},
		{Name: "field-list", Kind: syntax.KindFieldList, Handler: skip},
		{Name: "type-expr", Kind: syntax.KindTypeExpr, Handler: skip},
		{Name: "type-name", Kind: syntax.KindAny, Guard: denotesType, Handler: skip},
		{Name: "type-switch", Kind: syntax.KindTypeSwitchStmt, Handler: HandlerFunc(typeSwitch)},
		{Name: "type-switch-clause", Kind: syntax.KindCaseClause, Guard: inTypeSwitch, Handler: HandlerFunc(clauseBody)},
		{Name: "type-assert", Kind: syntax.KindTypeAssertExpr, Handler: HandlerFunc(typeAssert)},
		{Name: "func-lit", Kind: syntax.KindFuncLit, Handler: HandlerFunc(funcLit)},
		{Name: "init-func", Kind: syntax.KindFuncDecl, Guard: isInitFunc, Handler: HandlerFunc(initFunc)},
		{Name: "func-decl", Kind: syntax.KindFuncDecl, Handler: HandlerFunc(funcDecl)},
		{Name: "package-var", Kind: syntax.KindGenDecl, Guard: isPackageVar, Handler: HandlerFunc(packageVar)},
		{Name: "assign", Kind: syntax.KindAssignStmt, Handler: HandlerFunc(assignment)},
		{Name: "inc-dec", Kind: syntax.KindIncDecStmt, Handler: HandlerFunc(incDec)},
		{Name: "embedded-expr-stmt", Kind: syntax.KindExprStmt, Guard: isEmbeddedStmt, Handler: HandlerFunc(embeddedExprStmt)},
		{Name: "constant-index", Kind: syntax.KindIndexExpr, Guard: hasCheckedIndex, Handler: HandlerFunc(checkedIndex)},
		{Name: "constant-slice", Kind: syntax.KindSliceExpr, Guard: hasCheckedBounds, Handler: HandlerFunc(checkedSlice)},
		{Name: "elided-composite", Kind: syntax.KindCompositeLit, Guard: hasElidedType, Handler: HandlerFunc(elidedComposite)},
		{Name: "file", Kind: syntax.KindFile, Handler: HandlerFunc(file)},
		{Name: "generic", Kind: syntax.KindAny, Handler: HandlerFunc(generic)},
	}
}

// skip leaves the whole subtree alone: no mutations, no recursion.
var skip = HandlerFunc(func(_ *Walk, node ast.Node, _ MutationContext) ast.Node {
	return node
})

func generic(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	w.Generate(node, mctx)
	w.VisitChildren(node, mctx)

	return node
}

func genDeclOf(tok token.Token) Guard {
	return func(node ast.Node, _ *Walk) bool {
		decl, ok := node.(*ast.GenDecl)
		return ok && decl.Tok == tok
	}
}

func denotesType(node ast.Node, w *Walk) bool {
	expr, ok := node.(ast.Expr)
	return ok && w.Semantics().IsType(expr)
}

func typeSwitch(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	stmt := node.(*ast.TypeSwitchStmt)

	if stmt.Init != nil {
		w.Visit(stmt.Init, mctx)
	}

	// The guard (x := y.(type)) only names types.
	w.Visit(stmt.Body, mctx)

	return node
}

func inTypeSwitch(node ast.Node, w *Walk) bool {
	block, ok := w.Tree().Parent(node).(*ast.BlockStmt)
	if !ok {
		return false
	}

	_, ok = w.Tree().Parent(block).(*ast.TypeSwitchStmt)

	return ok
}

func clauseBody(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	for _, stmt := range node.(*ast.CaseClause).Body {
		w.Visit(stmt, mctx)
	}

	return node
}

func typeAssert(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	w.Generate(node, mctx)
	w.Visit(node.(*ast.TypeAssertExpr).X, mctx)

	return node
}

// funcLit bodies run when called, never while the enclosing initializer runs.
func funcLit(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	w.Visit(node.(*ast.FuncLit).Body, mctx.WithStaticValue(false).WithoutHoist())
	return node
}

func isInitFunc(node ast.Node, _ *Walk) bool {
	fn := node.(*ast.FuncDecl)
	return fn.Recv == nil && fn.Name.Name == "init"
}

func initFunc(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	fn := node.(*ast.FuncDecl)
	if fn.Body != nil {
		w.Visit(fn.Body, applyIgnoreDirectives(w.Logger(), mctx, fn.Doc).WithStaticValue(true))
	}

	return node
}

func funcDecl(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	fn := node.(*ast.FuncDecl)
	if fn.Body != nil {
		w.Visit(fn.Body, applyIgnoreDirectives(w.Logger(), mctx, fn.Doc))
	}

	return node
}

func isPackageVar(node ast.Node, w *Walk) bool {
	decl := node.(*ast.GenDecl)
	if decl.Tok != token.VAR {
		return false
	}

	_, atFileLevel := w.Tree().Parent(node).(*ast.File)

	return atFileLevel
}

func packageVar(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	decl := node.(*ast.GenDecl)
	static := applyIgnoreDirectives(w.Logger(), mctx, decl.Doc).WithStaticValue(true)

	for _, spec := range decl.Specs {
		w.Visit(spec, static)
	}

	return node
}

// assignment mutates the statement as a whole. Mutations found on the left
// hand side stay attached to the statement: an assignment target must remain
// addressable, so it cannot be swapped in isolation.
func assignment(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	stmt := node.(*ast.AssignStmt)

	w.Generate(stmt, mctx)

	for _, lhs := range stmt.Lhs {
		w.Visit(lhs, mctx.WithHoist(stmt))
	}

	for _, rhs := range stmt.Rhs {
		w.Visit(rhs, mctx)
	}

	return node
}

func incDec(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	stmt := node.(*ast.IncDecStmt)

	w.Generate(stmt, mctx)
	w.Visit(stmt.X, mctx.WithHoist(stmt))

	return node
}

// isEmbeddedStmt matches statements filling a single slot of another
// statement, like the Init of an if. Removing them leaves a hole the grammar
// does not allow.
func isEmbeddedStmt(node ast.Node, w *Walk) bool {
	return w.Tree().Parent(node) != nil && !w.Tree().InStatementList(node)
}

func embeddedExprStmt(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	w.Visit(node.(*ast.ExprStmt).X, mctx)
	return node
}

// boundsChecked reports whether constant indices into a value of type t are
// checked by the compiler: arrays, pointers to arrays and strings. Unknown
// types count as checked.
func boundsChecked(t types.Type) bool {
	if t == nil {
		return true
	}

	switch u := t.Underlying().(type) {
	case *types.Array:
		return true
	case *types.Pointer:
		_, ok := u.Elem().Underlying().(*types.Array)
		return ok
	case *types.Basic:
		return u.Info()&types.IsString != 0
	default:
		return false
	}
}

func hasCheckedIndex(node ast.Node, w *Walk) bool {
	idx := node.(*ast.IndexExpr)
	return w.Semantics().IsConstant(idx.Index) && boundsChecked(w.Semantics().TypeOf(idx.X))
}

// checkedIndex keeps a constant index as it is: shifting it may move it out
// of range, which the compiler rejects.
func checkedIndex(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	idx := node.(*ast.IndexExpr)

	w.Generate(idx, mctx)
	w.Visit(idx.X, mctx)

	return node
}

func sliceBounds(expr *ast.SliceExpr) []ast.Expr {
	var bounds []ast.Expr

	for _, bound := range []ast.Expr{expr.Low, expr.High, expr.Max} {
		if bound != nil {
			bounds = append(bounds, bound)
		}
	}

	return bounds
}

func hasCheckedBounds(node ast.Node, w *Walk) bool {
	expr := node.(*ast.SliceExpr)
	if !boundsChecked(w.Semantics().TypeOf(expr.X)) {
		return false
	}

	for _, bound := range sliceBounds(expr) {
		if w.Semantics().IsConstant(bound) {
			return true
		}
	}

	return false
}

// checkedSlice visits the operand and the non-constant bounds only.
func checkedSlice(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	expr := node.(*ast.SliceExpr)

	w.Generate(expr, mctx)
	w.Visit(expr.X, mctx)

	for _, bound := range sliceBounds(expr) {
		if !w.Semantics().IsConstant(bound) {
			w.Visit(bound, mctx)
		}
	}

	return node
}

func hasElidedType(node ast.Node, _ *Walk) bool {
	return node.(*ast.CompositeLit).Type == nil
}

// elidedComposite hoists mutations of literals like the inner {1, 2} of
// [][]int{{1, 2}}: without a type of their own they cannot be wrapped as an
// expression, only replaced through the statement holding them.
func elidedComposite(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	if stmt := w.Tree().EnclosingStatement(node); stmt != nil {
		mctx = mctx.WithHoist(stmt)
	}

	return generic(w, node, mctx)
}

func file(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	f := node.(*ast.File)
	return generic(w, node, applyIgnoreDirectives(w.Logger(), mctx, fileHeaderComments(f)...))
}
