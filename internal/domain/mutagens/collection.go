package mutagens

import (
	"go/ast"
	"go/types"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// Collection empties non-empty slice, array and map literals.
func Collection() *Mutagen {
	return &Mutagen{id: "empty-collection", kind: m.KindCollection, level: m.LevelStandard, propose: proposeCollection}
}

func proposeCollection(n ast.Node, sem syntax.SemanticModel) ([]m.Mutation, error) {
	lit, ok := n.(*ast.CompositeLit)
	if !ok || len(lit.Elts) == 0 || !isCollection(sem, lit) {
		return nil, nil
	}

	replacement := syntax.Clone(lit)
	replacement.Elts = nil

	return []m.Mutation{{
		Kind:        m.KindCollection,
		Original:    lit,
		Replacement: replacement,
		Description: "empty collection literal",
	}}, nil
}

func isCollection(sem syntax.SemanticModel, lit *ast.CompositeLit) bool {
	// [...]T{} would change the array length.
	if arr, ok := lit.Type.(*ast.ArrayType); ok {
		if _, ellipsis := arr.Len.(*ast.Ellipsis); ellipsis {
			return false
		}
	}

	if t := sem.TypeOf(lit); t != nil {
		switch t.Underlying().(type) {
		case *types.Slice, *types.Map, *types.Array:
			return true
		default:
			return false
		}
	}

	switch lit.Type.(type) {
	case *ast.ArrayType, *ast.MapType:
		return true
	default:
		return false
	}
}
