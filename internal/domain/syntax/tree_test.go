package syntax_test

import (
	"go/ast"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
)

const treeSrc = `package p

var table = [][]int{{1}}

func loop(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += i
	}
	return total
}
`

func TestTreeParents(t *testing.T) {
	_, file := parse(t, treeSrc)
	tree := syntax.NewTree(file)

	fn := first[*ast.FuncDecl](t, file, nil)
	ret := first[*ast.ReturnStmt](t, file, nil)

	assert.Same(t, file, tree.Root())
	assert.Nil(t, tree.Parent(file))
	assert.Same(t, fn.Body, tree.Parent(ret))
	assert.True(t, tree.Contains(file))
	assert.True(t, tree.Contains(ret))
	assert.False(t, tree.Contains(&ast.Ident{Name: "stray"}))
	assert.True(t, tree.Within(ret, fn))
	assert.True(t, tree.Within(fn, fn))
	assert.False(t, tree.Within(fn, ret))
}

func TestTreeEnclosingStatement(t *testing.T) {
	_, file := parse(t, treeSrc)
	tree := syntax.NewTree(file)

	t.Run("elided composite literal resolves to the value spec", func(t *testing.T) {
		inner := first(t, file, func(c *ast.CompositeLit) bool { return c.Type == nil })
		spec := first[*ast.ValueSpec](t, file, nil)

		assert.Same(t, spec, tree.EnclosingStatement(inner))
	})

	t.Run("for post resolves to the loop", func(t *testing.T) {
		post := first[*ast.IncDecStmt](t, file, nil)
		loop := first[*ast.ForStmt](t, file, nil)

		assert.Same(t, loop, tree.EnclosingStatement(post.X))
		assert.Same(t, loop, tree.EnclosingStatement(post))
	})

	t.Run("body statement resolves to itself when asked for a child", func(t *testing.T) {
		assign := first(t, file, func(a *ast.AssignStmt) bool { return a.Tok == token.ADD_ASSIGN })

		assert.Same(t, assign, tree.EnclosingStatement(assign.Lhs[0]))
	})

	t.Run("declarations have none", func(t *testing.T) {
		fn := first[*ast.FuncDecl](t, file, nil)

		assert.Nil(t, tree.EnclosingStatement(fn.Name))
	})
}

func TestChildren(t *testing.T) {
	_, file := parse(t, treeSrc)

	bin := first[*ast.BinaryExpr](t, file, nil)
	children := syntax.Children(bin)

	require.Len(t, children, 2)
	assert.Same(t, bin.X, children[0])
	assert.Same(t, bin.Y, children[1])
	assert.Empty(t, syntax.Children(&ast.Ident{Name: "x"}))
}

func TestTreeInStatementList(t *testing.T) {
	_, file := parse(t, `package p

func f(g func(), c bool, ch chan int) {
	if g(); c {
		g()
	}
	select {
	case <-ch:
		g()
	}
loop:
	g()
	goto loop
}
`)
	tree := syntax.NewTree(file)

	ifStmt := first[*ast.IfStmt](t, file, nil)
	comm := first[*ast.CommClause](t, file, nil)
	labeled := first[*ast.LabeledStmt](t, file, nil)

	assert.False(t, tree.InStatementList(ifStmt.Init))
	assert.True(t, tree.InStatementList(ifStmt.Body.List[0]))
	assert.True(t, tree.InStatementList(ifStmt))
	assert.False(t, tree.InStatementList(comm.Comm))
	assert.True(t, tree.InStatementList(comm.Body[0]))
	assert.True(t, tree.InStatementList(labeled.Stmt))
	assert.False(t, tree.InStatementList(file))
}
