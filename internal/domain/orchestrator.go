package domain

import (
	"fmt"
	"go/ast"
	"log/slog"
	"slices"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// Config is the part of the user configuration the core reads.
type Config struct {
	Level m.Level
	// Filters maps globally filtered kinds to the reason reported for them.
	Filters map[m.MutationKind]string
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithMutagens replaces the built-in mutagen catalogue.
func WithMutagens(mutagens ...Mutagen) Option {
	return func(o *Orchestrator) {
		o.mutagens = mutagens
	}
}

// WithHandlers replaces the built-in dispatch catalogue. The replacement is
// validated like any other table, so an empty one is rejected.
func WithHandlers(entries ...Entry) Option {
	return func(o *Orchestrator) {
		o.entries = entries
		o.handlersSet = true
	}
}

// WithPlacer sets the collaborator that later weaves mutants into source.
func WithPlacer(placer Placer) Option {
	return func(o *Orchestrator) {
		o.placer = placer
	}
}

// WithEquivalence replaces the structural comparer used for duplicate detection.
func WithEquivalence(equal syntax.Equivalence) Option {
	return func(o *Orchestrator) {
		o.equal = equal
	}
}

// WithLogger sets the logger used for mutant and fault events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator walks one syntax tree, dispatching every node to its handler
// and collecting the mutants the handlers generate into a shared registry.
type Orchestrator struct {
	config   Config
	entries  []Entry
	table    *HandlerTable
	mutagens []Mutagen
	placer   Placer
	equal    syntax.Equivalence
	logger   *slog.Logger
	registry *Registry

	// handlersSet is true once WithHandlers ran, even with no entries.
	handlersSet bool
}

// NewOrchestrator builds an orchestrator. Without WithMutagens the built-in
// catalogue is used; an incomplete dispatch table is reported here, never
// during traversal.
func NewOrchestrator(cfg Config, opts ...Option) (*Orchestrator, error) {
	o := &Orchestrator{config: cfg}

	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	if len(o.mutagens) == 0 {
		o.mutagens = DefaultMutagens()
	}

	if !o.handlersSet {
		o.entries = DefaultHandlers()
	}

	table, err := NewHandlerTable(o.entries...)
	if err != nil {
		return nil, fmt.Errorf("build dispatch table: %w", err)
	}

	o.table = table
	o.registry = NewRegistry(o.equal, o.logger)

	return o, nil
}

// Mutate traverses root depth-first and records mutants for every node its
// handlers allow. The returned node is root itself: mutants are only woven
// into source later, by the placer.
func (o *Orchestrator) Mutate(root ast.Node, sem syntax.SemanticModel) ast.Node {
	if root == nil {
		return nil
	}

	if sem == nil {
		sem = syntax.NewTypesModel(nil)
	}

	w := &Walk{o: o, sem: sem, tree: syntax.NewTree(root)}

	return w.Visit(root, o.rootContext())
}

// rootContext seeds the traversal with the globally filtered kinds.
func (o *Orchestrator) rootContext() MutationContext {
	mctx := NewMutationContext()

	kinds := make([]m.MutationKind, 0, len(o.config.Filters))
	for kind := range o.config.Filters {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	for _, kind := range kinds {
		mctx = mctx.WithFilter(kind, o.config.Filters[kind])
	}

	return mctx
}

// GenerateMutationsForNode runs every mutagen against node, in registration
// order, and returns the mutants the registry accepted. A failing mutagen is
// logged and skipped for this node only.
func (o *Orchestrator) GenerateMutationsForNode(node ast.Node, sem syntax.SemanticModel, mctx MutationContext) []m.Mutant {
	opts := m.MutagenOptions{Level: o.config.Level}

	var accepted []m.Mutant

	for _, mg := range o.mutagens {
		mutations, err := propose(mg, node, sem, opts)
		if err != nil {
			o.logger.Warn("Mutagen failed, skipping its mutations for node",
				"mutagen", mg.ID(),
				"node", syntax.KindOf(node).String(),
				"pos", node.Pos(),
				"error", err,
			)

			continue
		}

		for _, mutation := range mutations {
			if mutant, ok := o.registry.TryAdd(reroot(mutation, mctx), mg.ID(), mctx); ok {
				accepted = append(accepted, mutant)
			}
		}
	}

	return accepted
}

// reroot attaches a mutation to the statement the context hoists to, replacing
// the targeted node inside a copy of that statement.
func reroot(mutation m.Mutation, mctx MutationContext) m.Mutation {
	stmt := mctx.Hoist()
	if stmt == nil || stmt == mutation.Original {
		return mutation
	}

	mutation.Replacement = syntax.Replace(stmt, mutation.Original, mutation.Replacement)
	mutation.Original = stmt

	return mutation
}

// Mutants returns every mutant recorded so far, in id order.
func (o *Orchestrator) Mutants() []m.Mutant {
	return o.registry.Mutants()
}

// Placer returns the placement collaborator, which may be nil.
func (o *Orchestrator) Placer() Placer {
	return o.placer
}

// Walk is the view of one traversal that handlers work with.
type Walk struct {
	o    *Orchestrator
	sem  syntax.SemanticModel
	tree *syntax.Tree
}

// Visit resolves node's handler and runs it under mctx.
func (w *Walk) Visit(node ast.Node, mctx MutationContext) ast.Node {
	entry, ok := w.o.table.Resolve(node, w)
	if !ok {
		w.o.logger.Error("No dispatch entry for node", "node", syntax.KindOf(node).String(), "pos", node.Pos())
		return node
	}

	return entry.Handler.Handle(w, node, mctx)
}

// VisitChildren visits every direct child of node under mctx.
func (w *Walk) VisitChildren(node ast.Node, mctx MutationContext) {
	for _, child := range syntax.Children(node) {
		w.Visit(child, mctx)
	}
}

// Generate runs the mutagens against node under mctx.
func (w *Walk) Generate(node ast.Node, mctx MutationContext) []m.Mutant {
	return w.o.GenerateMutationsForNode(node, w.sem, mctx)
}

// Tree returns the parent index of the traversed tree.
func (w *Walk) Tree() *syntax.Tree {
	return w.tree
}

// Semantics returns the semantic model of the traversed tree.
func (w *Walk) Semantics() syntax.SemanticModel {
	return w.sem
}

// Logger returns the logger handlers report traversal problems to.
func (w *Walk) Logger() *slog.Logger {
	return w.o.logger
}
