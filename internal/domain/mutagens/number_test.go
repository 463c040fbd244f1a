package mutagens

import (
	"go/ast"
	"testing"

	m "gooze.dev/pkg/mutor/internal/model"
)

func TestNumber(t *testing.T) {
	t.Run("increments integer and float literals", func(t *testing.T) {
		f := load(t, `package p
func values() (int, int, float64, float64) { return 0, 41, 1.5, 2.0 }
`)

		assertReplacements(t, collect(t, Number(), f), "1", "42", "2.5", "3.0")
	})

	t.Run("skips overflowing sized integers", func(t *testing.T) {
		f := load(t, `package p
var full uint8 = 255
var some uint8 = 254
`)

		assertReplacements(t, collect(t, Number(), f), "255")
	})

	t.Run("is disabled below the complete level", func(t *testing.T) {
		f := load(t, `package p
var n = 1
`)

		var count int

		ast.Inspect(f.file, func(n ast.Node) bool {
			if n == nil {
				return false
			}

			proposed, err := Number().Propose(n, f.sem, m.MutagenOptions{Level: m.LevelStandard})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			count += len(proposed)

			return true
		})

		if count != 0 {
			t.Fatalf("expected no mutations, got %d", count)
		}
	})
}
