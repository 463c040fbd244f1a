package syntax

import "go/ast"

// Tree indexes the parent of every node below a root.
type Tree struct {
	root    ast.Node
	parents map[ast.Node]ast.Node
}

// NewTree walks root once and records parent links.
func NewTree(root ast.Node) *Tree {
	t := &Tree{root: root, parents: make(map[ast.Node]ast.Node)}

	var stack []ast.Node

	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return false
		}

		if len(stack) > 0 {
			t.parents[n] = stack[len(stack)-1]
		}

		stack = append(stack, n)

		return true
	})

	return t
}

// Root returns the node the tree was built from.
func (t *Tree) Root() ast.Node {
	return t.root
}

// Parent returns the parent of n, or nil for the root and unknown nodes.
func (t *Tree) Parent(n ast.Node) ast.Node {
	return t.parents[n]
}

// Contains reports whether n is the root or one of its descendants.
func (t *Tree) Contains(n ast.Node) bool {
	if n == t.root {
		return true
	}

	_, ok := t.parents[n]

	return ok
}

// Within reports whether n lies in the subtree rooted at ancestor (inclusive).
func (t *Tree) Within(n, ancestor ast.Node) bool {
	for cur := n; cur != nil; cur = t.parents[cur] {
		if cur == ancestor {
			return true
		}
	}

	return false
}

// EnclosingStatement returns the nearest statement or value spec containing n.
// Statements that are themselves held by a block are preferred over nested ones
// such as the Init or Post of a for loop, which cannot stand alone.
func (t *Tree) EnclosingStatement(n ast.Node) ast.Node {
	for cur := t.parents[n]; cur != nil; cur = t.parents[cur] {
		switch cur.(type) {
		case *ast.ValueSpec:
			return cur
		case ast.Stmt:
			if isStatementListHolder(t.parents[cur]) {
				return cur
			}
		}
	}

	return nil
}

// InStatementList reports whether the statement n stands on its own in a
// block, clause body or label, as opposed to slots such as an if Init, a for
// Post or a select case's communication.
func (t *Tree) InStatementList(n ast.Node) bool {
	parent := t.parents[n]
	if clause, ok := parent.(*ast.CommClause); ok && clause.Comm == n {
		return false
	}

	return isStatementListHolder(parent)
}

func isStatementListHolder(n ast.Node) bool {
	switch n.(type) {
	case *ast.BlockStmt, *ast.CaseClause, *ast.CommClause, *ast.LabeledStmt:
		return true
	default:
		return false
	}
}

// Children returns the direct children of n in source order.
func Children(n ast.Node) []ast.Node {
	var children []ast.Node

	ast.Inspect(n, func(c ast.Node) bool {
		if c == nil {
			return false
		}

		if c == n {
			return true
		}

		children = append(children, c)

		return false
	})

	return children
}
