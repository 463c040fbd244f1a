package syntax_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
)

func parse(t *testing.T, src string) (*token.FileSet, *ast.File) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, parser.ParseComments)
	require.NoError(t, err)

	return fset, file
}

func check(t *testing.T, src string) (*ast.File, *syntax.TypesModel) {
	t.Helper()

	fset, file := parse(t, src)
	info := syntax.NewInfo()
	conf := types.Config{Importer: importer.Default()}

	_, err := conf.Check("p", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return file, syntax.NewTypesModel(info)
}

func first[T ast.Node](t *testing.T, root ast.Node, match func(T) bool) T {
	t.Helper()

	var (
		found T
		ok    bool
	)

	ast.Inspect(root, func(n ast.Node) bool {
		if ok {
			return false
		}

		if v, isT := n.(T); isT && (match == nil || match(v)) {
			found, ok = v, true
			return false
		}

		return true
	})

	require.True(t, ok, "node not found")

	return found
}
