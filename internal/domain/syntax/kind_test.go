package syntax_test

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		node ast.Node
		want syntax.Kind
	}{
		{node: &ast.File{}, want: syntax.KindFile},
		{node: &ast.Comment{}, want: syntax.KindComment},
		{node: &ast.CommentGroup{}, want: syntax.KindComment},
		{node: &ast.BinaryExpr{}, want: syntax.KindBinaryExpr},
		{node: &ast.IndexExpr{}, want: syntax.KindIndexExpr},
		{node: &ast.IndexListExpr{}, want: syntax.KindIndexExpr},
		{node: &ast.MapType{}, want: syntax.KindTypeExpr},
		{node: &ast.Ellipsis{}, want: syntax.KindTypeExpr},
		{node: &ast.FuncLit{}, want: syntax.KindFuncLit},
		{node: &ast.BadExpr{}, want: syntax.KindOther},
		{node: nil, want: syntax.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, syntax.KindOf(tt.node))
		})
	}
}

func TestKinds(t *testing.T) {
	kinds := syntax.Kinds()

	assert.NotContains(t, kinds, syntax.KindAny)
	assert.Contains(t, kinds, syntax.KindOther)
	assert.Contains(t, kinds, syntax.KindTypeExpr)

	seen := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		name := k.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func TestKindStringUnknown(t *testing.T) {
	assert.Equal(t, "unknown", syntax.Kind(-1).String())
}
