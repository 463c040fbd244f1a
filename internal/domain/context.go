package domain

import (
	"go/ast"
	"maps"

	m "gooze.dev/pkg/mutor/internal/model"
)

// MutationContext is the traversal state handed down the recursion.
//
// It is a value: every With* method returns a derived copy and the receiver is
// never changed, so sibling subtrees visited with different contexts cannot
// observe each other.
type MutationContext struct {
	inStaticValue bool
	filters       map[m.MutationKind]string
	hoist         ast.Node
}

// NewMutationContext returns the neutral root context: not static, nothing filtered.
func NewMutationContext() MutationContext {
	return MutationContext{}
}

// WithStaticValue derives a context with the static flag set to static.
func (c MutationContext) WithStaticValue(static bool) MutationContext {
	c.inStaticValue = static
	return c
}

// WithFilter derives a context in which mutations of kind are tagged Ignored with reason.
// m.KindAll filters every kind.
func (c MutationContext) WithFilter(kind m.MutationKind, reason string) MutationContext {
	filters := make(map[m.MutationKind]string, len(c.filters)+1)
	maps.Copy(filters, c.filters)
	filters[kind] = reason
	c.filters = filters

	return c
}

// WithHoist derives a context whose mutations are re-rooted to stmt.
// An already hoisted context keeps its outermost statement.
func (c MutationContext) WithHoist(stmt ast.Node) MutationContext {
	if c.hoist == nil {
		c.hoist = stmt
	}

	return c
}

// WithoutHoist derives a context whose mutations stay on the node they target.
func (c MutationContext) WithoutHoist() MutationContext {
	c.hoist = nil
	return c
}

// InStaticValue reports whether the subtree runs at package initialization.
func (c MutationContext) InStaticValue() bool {
	return c.inStaticValue
}

// Filtered reports whether kind is filtered and why. A kind-specific reason
// wins over a blanket m.KindAll filter.
func (c MutationContext) Filtered(kind m.MutationKind) (string, bool) {
	if reason, ok := c.filters[kind]; ok {
		return reason, true
	}

	reason, ok := c.filters[m.KindAll]

	return reason, ok
}

// Hoist returns the statement mutations must be re-rooted to, or nil.
func (c MutationContext) Hoist() ast.Node {
	return c.hoist
}
