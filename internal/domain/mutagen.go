// Package domain contains the mutation orchestration core: traversal context,
// mutant registry, handler dispatch and the orchestrator tying them together.
package domain

import (
	"errors"
	"fmt"
	"go/ast"

	"gooze.dev/pkg/mutor/internal/domain/mutagens"
	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// ErrMutagenPanic wraps a panic raised inside a mutagen.
var ErrMutagenPanic = errors.New("mutagen panicked")

// Mutagen proposes replacements for a single node. Implementations must not
// modify the node or depend on the order in which mutagens run.
type Mutagen interface {
	ID() string
	Kind() m.MutationKind
	Propose(node ast.Node, sem syntax.SemanticModel, opts m.MutagenOptions) ([]m.Mutation, error)
}

// DefaultMutagens returns the built-in catalogue in registration order.
func DefaultMutagens() []Mutagen {
	catalogue := mutagens.Default()

	out := make([]Mutagen, 0, len(catalogue))
	for _, mg := range catalogue {
		out = append(out, mg)
	}

	return out
}

// propose runs one mutagen, turning a panic into an error attributed to it.
func propose(mg Mutagen, node ast.Node, sem syntax.SemanticModel, opts m.MutagenOptions) (mutations []m.Mutation, err error) {
	defer func() {
		if r := recover(); r != nil {
			mutations = nil
			err = fmt.Errorf("%w: %v", ErrMutagenPanic, r)
		}
	}()

	mutations, err = mg.Propose(node, sem, opts)
	if err != nil {
		return nil, err
	}

	for i := range mutations {
		if mutations[i].Original == nil {
			mutations[i].Original = node
		}

		if mutations[i].Replacement == nil {
			return nil, fmt.Errorf("mutation %d has no replacement", i)
		}

		if mutations[i].Kind == "" {
			mutations[i].Kind = mg.Kind()
		}
	}

	return mutations, nil
}
