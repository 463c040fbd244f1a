package domain

import (
	"errors"
	"fmt"
	"go/ast"
	"strings"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
)

// ErrIncompleteDispatch reports a dispatch table that cannot resolve every node kind.
var ErrIncompleteDispatch = errors.New("dispatch table does not cover every node kind")

// Handler decides, for one node, which mutations are generated and how the
// traversal continues below it. It returns the node the parent keeps.
type Handler interface {
	Handle(w *Walk, node ast.Node, mctx MutationContext) ast.Node
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(w *Walk, node ast.Node, mctx MutationContext) ast.Node

// Handle implements Handler.
func (f HandlerFunc) Handle(w *Walk, node ast.Node, mctx MutationContext) ast.Node {
	return f(w, node, mctx)
}

// Guard refines an entry beyond its node kind.
type Guard func(node ast.Node, w *Walk) bool

// Entry is one row of the dispatch table. A nil Guard accepts every node of Kind.
type Entry struct {
	Name    string
	Kind    syntax.Kind
	Guard   Guard
	Handler Handler
}

func (e Entry) matches(kind syntax.Kind, node ast.Node, w *Walk) bool {
	if e.Kind != syntax.KindAny && e.Kind != kind {
		return false
	}

	return e.Guard == nil || e.Guard(node, w)
}

// HandlerTable resolves the handler of a node: entries are tried in
// registration order and the first match wins, so narrower entries must be
// registered before the broader ones they overlap with.
type HandlerTable struct {
	entries []Entry
}

// NewHandlerTable validates and freezes entries. Every node kind must be
// covered by at least one unguarded entry, either of that kind or of
// syntax.KindAny; otherwise ErrIncompleteDispatch is returned.
func NewHandlerTable(entries ...Entry) (*HandlerTable, error) {
	for i, entry := range entries {
		if entry.Handler == nil {
			return nil, fmt.Errorf("dispatch entry %d (%s) has no handler", i, entry.Name)
		}
	}

	var missing []string

	for _, kind := range syntax.Kinds() {
		if !covered(entries, kind) {
			missing = append(missing, kind.String())
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: no unguarded entry for %s", ErrIncompleteDispatch, strings.Join(missing, ", "))
	}

	frozen := make([]Entry, len(entries))
	copy(frozen, entries)

	return &HandlerTable{entries: frozen}, nil
}

func covered(entries []Entry, kind syntax.Kind) bool {
	for _, entry := range entries {
		if entry.Guard == nil && (entry.Kind == syntax.KindAny || entry.Kind == kind) {
			return true
		}
	}

	return false
}

// Resolve returns the first entry accepting node.
func (t *HandlerTable) Resolve(node ast.Node, w *Walk) (Entry, bool) {
	kind := syntax.KindOf(node)

	for _, entry := range t.entries {
		if entry.matches(kind, node, w) {
			return entry, true
		}
	}

	return Entry{}, false
}

// Entries returns a copy of the table rows in resolution order.
func (t *HandlerTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}
