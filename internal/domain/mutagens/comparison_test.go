package mutagens

import "testing"

func TestComparison(t *testing.T) {
	t.Run("swaps ordered operands for every comparison", func(t *testing.T) {
		f := load(t, `package p
func less(a, b int) bool { return a < b }
`)

		assertReplacements(t, collect(t, Comparison(), f),
			"a > b", "a <= b", "a >= b", "a == b", "a != b")
	})

	t.Run("limits pointers to equality swaps", func(t *testing.T) {
		f := load(t, `package p
func same(p, q *int) bool { return p == q }
`)

		assertReplacements(t, collect(t, Comparison(), f), "p != q")
	})

	t.Run("limits booleans to equality swaps", func(t *testing.T) {
		f := load(t, `package p
func differ(x, y bool) bool { return x != y }
`)

		assertReplacements(t, collect(t, Comparison(), f), "x == y")
	})

	t.Run("ignores non comparison operators", func(t *testing.T) {
		f := load(t, `package p
func add(a, b int) int { return a + b }
`)

		assertReplacements(t, collect(t, Comparison(), f))
	})
}
