package syntax

import (
	"go/ast"
	"go/token"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equivalence decides whether two replacement nodes have the same shape.
type Equivalence func(a, b ast.Node) bool

// shapeOptions drop everything that does not change what the code means:
// positions, comments and the resolver's object and scope links (which also
// carry cycles back into the tree).
var shapeOptions = cmp.Options{
	cmpopts.IgnoreTypes(token.NoPos, (*ast.Object)(nil), (*ast.Scope)(nil), (*ast.CommentGroup)(nil)),
	cmpopts.EquateEmpty(),
}

// Equivalent compares two nodes structurally. Operators, literal values and
// identifier names are significant; positions and formatting are not.
func Equivalent(a, b ast.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return cmp.Equal(a, b, shapeOptions)
}

// ShapeDiff renders the structural difference between two nodes, for logs and tests.
func ShapeDiff(a, b ast.Node) string {
	return cmp.Diff(a, b, shapeOptions)
}
