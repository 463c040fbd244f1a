package domain

import (
	"go/ast"
	"log/slog"
	"sync"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// Registry records accepted mutants in creation order and suppresses duplicates.
//
// A mutation is a duplicate when a recorded mutant targets the same original
// node (by reference) with an equivalent replacement. Which mutagen proposed it
// does not matter. Writes are serialized so ids and duplicate checks stay global
// even if several goroutines feed the same registry.
type Registry struct {
	mu         sync.Mutex
	equal      syntax.Equivalence
	logger     *slog.Logger
	mutants    []m.Mutant
	byOriginal map[ast.Node][]int
}

// NewRegistry creates an empty registry. A nil equivalence falls back to
// syntax.Equivalent and a nil logger to slog.Default().
func NewRegistry(equal syntax.Equivalence, logger *slog.Logger) *Registry {
	if equal == nil {
		equal = syntax.Equivalent
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		equal:      equal,
		logger:     logger,
		byOriginal: make(map[ast.Node][]int),
	}
}

// TryAdd records mutation unless it duplicates an existing mutant. The returned
// bool is false for duplicates, in which case no id is consumed.
func (r *Registry) TryAdd(mutation m.Mutation, mutagenID string, mctx MutationContext) (m.Mutant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, idx := range r.byOriginal[mutation.Original] {
		existing := r.mutants[idx]
		if r.equal(existing.Mutation.Replacement, mutation.Replacement) {
			r.logger.Debug("Discarded duplicate mutation",
				"mutagen", mutagenID,
				"kind", mutation.Kind,
				"duplicateOf", existing.ID,
				"existingMutagen", existing.Mutagen,
			)

			return m.Mutant{}, false
		}
	}

	mutant := m.Mutant{
		ID:       len(r.mutants),
		Mutation: mutation,
		Mutagen:  mutagenID,
		Status:   m.Pending,
		Static:   mctx.InStaticValue(),
	}

	if reason, filtered := mctx.Filtered(mutation.Kind); filtered {
		mutant.Status = m.Ignored
		mutant.IgnoredReason = reason
	}

	r.byOriginal[mutation.Original] = append(r.byOriginal[mutation.Original], len(r.mutants))
	r.mutants = append(r.mutants, mutant)

	r.logger.Debug("Created mutant",
		"id", mutant.ID,
		"mutagen", mutagenID,
		"kind", mutation.Kind,
		"status", mutant.Status,
		"static", mutant.Static,
	)

	return mutant, true
}

// Mutants returns a copy of the recorded mutants in id order.
func (r *Registry) Mutants() []m.Mutant {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]m.Mutant, len(r.mutants))
	copy(out, r.mutants)

	return out
}

// Len returns the number of recorded mutants.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.mutants)
}
