// Package mutagens provides the built-in mutation generators.
package mutagens

import (
	"go/ast"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

type proposeFunc func(n ast.Node, sem syntax.SemanticModel) ([]m.Mutation, error)

// Mutagen is a built-in generator, active from a minimum mutation level on.
type Mutagen struct {
	id      string
	kind    m.MutationKind
	level   m.Level
	propose proposeFunc
}

// ID returns the mutagen's stable identifier.
func (g *Mutagen) ID() string {
	return g.id
}

// Kind returns the kind of every mutation this mutagen proposes.
func (g *Mutagen) Kind() m.MutationKind {
	return g.kind
}

// Level returns the lowest mutation level enabling this mutagen.
func (g *Mutagen) Level() m.Level {
	return g.level
}

// Propose returns the mutations of n, or nothing when opts.Level is below the mutagen's level.
func (g *Mutagen) Propose(n ast.Node, sem syntax.SemanticModel, opts m.MutagenOptions) ([]m.Mutation, error) {
	if n == nil || opts.Level < g.level {
		return nil, nil
	}

	if sem == nil {
		sem = syntax.NewTypesModel(nil)
	}

	return g.propose(n, sem)
}

// Default returns the built-in catalogue in registration order.
func Default() []*Mutagen {
	return []*Mutagen{
		Arithmetic(),
		Comparison(),
		Logical(),
		Boolean(),
		Unary(),
		IncDec(),
		Assignment(),
		Branch(),
		Collection(),
		String(),
		Number(),
		Statement(),
	}
}
