package mutagens

import "testing"

func TestAssignment(t *testing.T) {
	t.Run("swaps compound operators", func(t *testing.T) {
		f := load(t, `package p
func update(a int, b uint) (int, uint) {
	a += 2
	a /= 3
	b <<= 1
	return a, b
}
`)

		assertReplacements(t, collect(t, Assignment(), f), "a -= 2", "a *= 3", "b >>= 1")
	})

	t.Run("skips string concatenation", func(t *testing.T) {
		f := load(t, `package p
func grow(s string) string {
	s += "x"
	return s
}
`)

		assertReplacements(t, collect(t, Assignment(), f))
	})

	t.Run("never divides by constant zero", func(t *testing.T) {
		f := load(t, `package p
func clear(a int) int {
	a *= 0
	return a
}
`)

		assertReplacements(t, collect(t, Assignment(), f))
	})

	t.Run("ignores plain assignment", func(t *testing.T) {
		f := load(t, `package p
func set() int {
	a := 1
	a = 2
	return a
}
`)

		assertReplacements(t, collect(t, Assignment(), f))
	})
}
