package domain

import (
	"bytes"
	"go/ast"
	"go/token"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutor/internal/model"
)

func binary(op token.Token) *ast.BinaryExpr {
	return &ast.BinaryExpr{X: ast.NewIdent("a"), Op: op, Y: ast.NewIdent("b")}
}

func TestRegistry_TryAdd(t *testing.T) {
	t.Run("assigns ids from zero in creation order", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		original := binary(token.ADD)

		first, ok := reg.TryAdd(m.Mutation{Kind: m.KindArithmetic, Original: original, Replacement: binary(token.SUB)}, "arith", NewMutationContext())
		require.True(t, ok)

		second, ok := reg.TryAdd(m.Mutation{Kind: m.KindArithmetic, Original: original, Replacement: binary(token.MUL)}, "arith", NewMutationContext())
		require.True(t, ok)

		assert.Equal(t, 0, first.ID)
		assert.Equal(t, 1, second.ID)
		assert.Equal(t, m.Pending, first.Status)
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("discards equivalent replacements of the same node without consuming an id", func(t *testing.T) {
		logs := &bytes.Buffer{}
		reg := NewRegistry(nil, slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
		original := binary(token.ADD)

		_, ok := reg.TryAdd(m.Mutation{Kind: m.KindArithmetic, Original: original, Replacement: binary(token.SUB)}, "first", NewMutationContext())
		require.True(t, ok)

		_, ok = reg.TryAdd(m.Mutation{Kind: m.KindLogical, Original: original, Replacement: binary(token.SUB)}, "second", NewMutationContext())
		assert.False(t, ok)

		next, ok := reg.TryAdd(m.Mutation{Kind: m.KindArithmetic, Original: original, Replacement: binary(token.QUO)}, "first", NewMutationContext())
		require.True(t, ok)
		assert.Equal(t, 1, next.ID)

		mutants := reg.Mutants()
		require.Len(t, mutants, 2)
		assert.Equal(t, "first", mutants[0].Mutagen)
		assert.Equal(t, m.KindArithmetic, mutants[0].Mutation.Kind)
		assert.Contains(t, logs.String(), "Discarded duplicate mutation")
	})

	t.Run("equivalent replacements of different nodes are distinct", func(t *testing.T) {
		reg := NewRegistry(nil, nil)

		_, ok := reg.TryAdd(m.Mutation{Original: binary(token.ADD), Replacement: binary(token.SUB)}, "g", NewMutationContext())
		require.True(t, ok)

		_, ok = reg.TryAdd(m.Mutation{Original: binary(token.ADD), Replacement: binary(token.SUB)}, "g", NewMutationContext())
		assert.True(t, ok)
	})

	t.Run("records the static flag and filters of the context", func(t *testing.T) {
		reg := NewRegistry(nil, nil)
		mctx := NewMutationContext().WithStaticValue(true).WithFilter(m.KindArithmetic, "noisy")

		ignored, ok := reg.TryAdd(m.Mutation{Kind: m.KindArithmetic, Original: binary(token.ADD), Replacement: binary(token.SUB)}, "g", mctx)
		require.True(t, ok)
		assert.True(t, ignored.Static)
		assert.Equal(t, m.Ignored, ignored.Status)
		assert.Equal(t, "noisy", ignored.IgnoredReason)

		pending, ok := reg.TryAdd(m.Mutation{Kind: m.KindBoolean, Original: ast.NewIdent("true"), Replacement: ast.NewIdent("false")}, "g", mctx)
		require.True(t, ok)
		assert.Equal(t, m.Pending, pending.Status)
		assert.Empty(t, pending.IgnoredReason)
	})

	t.Run("custom equivalence", func(t *testing.T) {
		reg := NewRegistry(func(_, _ ast.Node) bool { return true }, nil)
		original := binary(token.ADD)

		_, ok := reg.TryAdd(m.Mutation{Original: original, Replacement: binary(token.SUB)}, "g", NewMutationContext())
		require.True(t, ok)

		_, ok = reg.TryAdd(m.Mutation{Original: original, Replacement: binary(token.MUL)}, "g", NewMutationContext())
		assert.False(t, ok)
	})
}

func TestRegistry_ConcurrentWritersKeepIDsUnique(t *testing.T) {
	reg := NewRegistry(nil, nil)
	original := binary(token.ADD)
	ops := []token.Token{token.SUB, token.MUL, token.QUO, token.REM}

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for _, op := range ops {
				reg.TryAdd(m.Mutation{Original: original, Replacement: binary(op)}, "g", NewMutationContext())
			}
		}()
	}

	wg.Wait()

	mutants := reg.Mutants()
	require.Len(t, mutants, len(ops))

	for i, mutant := range mutants {
		assert.Equal(t, i, mutant.ID)
	}
}

func TestRegistry_MutantsReturnsCopy(t *testing.T) {
	reg := NewRegistry(nil, nil)
	_, _ = reg.TryAdd(m.Mutation{Original: binary(token.ADD), Replacement: binary(token.SUB)}, "g", NewMutationContext())

	mutants := reg.Mutants()
	mutants[0].ID = 42

	assert.Equal(t, 0, reg.Mutants()[0].ID)
}
