package domain_test

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutor/internal/domain/mocks"
	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// loadSource parses and type-checks src as package p.
func loadSource(t *testing.T, src string) (*token.FileSet, *ast.File, syntax.SemanticModel) {
	t.Helper()

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "p.go", src, parser.ParseComments)
	require.NoError(t, err)

	info := syntax.NewInfo()
	_, err = (&types.Config{}).Check("p", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return fset, file, syntax.NewTypesModel(info)
}

func render(t *testing.T, n ast.Node) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, token.NewFileSet(), n))

	return buf.String()
}

// operatorSwapper is a mutagen replacing the operator of every binary
// expression with each of ops.
func operatorSwapper(t *testing.T, id string, kind m.MutationKind, ops ...token.Token) *mocks.MockMutagen {
	t.Helper()

	mg := mocks.NewMockMutagen(t)
	mg.EXPECT().ID().Return(id).Maybe()
	mg.EXPECT().Kind().Return(kind).Maybe()
	mg.EXPECT().Propose(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(node ast.Node, _ syntax.SemanticModel, _ m.MutagenOptions) ([]m.Mutation, error) {
			expr, ok := node.(*ast.BinaryExpr)
			if !ok {
				return nil, nil
			}

			var mutations []m.Mutation

			for _, op := range ops {
				replacement := syntax.Clone(expr)
				replacement.Op = op

				mutations = append(mutations, m.Mutation{
					Kind:        kind,
					Original:    expr,
					Replacement: replacement,
					Description: "replace " + expr.Op.String() + " with " + op.String(),
				})
			}

			return mutations, nil
		}).Maybe()

	return mg
}

// findNode returns the first node of type T in root.
func findNode[T ast.Node](t *testing.T, root ast.Node) T {
	t.Helper()

	var found T

	var ok bool

	ast.Inspect(root, func(n ast.Node) bool {
		if ok {
			return false
		}

		found, ok = n.(T)

		return !ok
	})

	require.True(t, ok, "node not found")

	return found
}
