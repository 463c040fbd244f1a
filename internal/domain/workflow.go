package domain

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"gooze.dev/pkg/mutor/internal/adapter"
	"gooze.dev/pkg/mutor/internal/controller"
	"gooze.dev/pkg/mutor/internal/domain/syntax"
	m "gooze.dev/pkg/mutor/internal/model"
)

// ListArgs holds the arguments of one listing run.
type ListArgs struct {
	Paths    []m.Path
	Exclude  []string
	Parallel int
	Config   Config
}

// Workflow drives the mutation core over a set of source files.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.GoFileAdapter
	controller.UI
	Placer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
// A nil placer lists mutants without diffs.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	goFileAdapter adapter.GoFileAdapter,
	ui controller.UI,
	placer Placer,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		GoFileAdapter:   goFileAdapter,
		UI:              ui,
		Placer:          placer,
	}
}

// packageGroup is the set of sources sharing one directory, by index into the run's results.
type packageGroup struct {
	dir     m.Path
	indexes []int
}

// List discovers the sources under args.Paths, generates the mutants of every
// file and hands them to the UI, ordered by file then mutant id. Packages are
// processed concurrently; each file gets its own orchestrator, so ids restart
// at 0 per file.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	logger := slog.Default().With("run", uuid.NewString())

	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		logger.Error("Failed to collect sources", "error", err)
		return fmt.Errorf("collect sources: %w", err)
	}

	logger.Info("Collected sources", "count", len(sources))

	results := make([]m.FileResult, len(sources))
	for i, source := range sources {
		results[i].Source = source
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(args.Parallel, 1))

	for _, pkg := range groupByPackage(sources) {
		group.Go(func() error {
			return w.listPackage(groupCtx, logger, args.Config, pkg, results)
		})
	}

	if err := group.Wait(); err != nil {
		logger.Error("Failed to list mutants", "error", err)
		return fmt.Errorf("list mutants: %w", err)
	}

	if err := w.DisplayMutants(ctx, results); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func groupByPackage(sources []m.Source) []packageGroup {
	var groups []packageGroup

	byDir := make(map[m.Path]int)

	for i, source := range sources {
		idx, ok := byDir[source.Package]
		if !ok {
			idx = len(groups)
			byDir[source.Package] = idx
			groups = append(groups, packageGroup{dir: source.Package})
		}

		groups[idx].indexes = append(groups[idx].indexes, i)
	}

	return groups
}

type parsedFile struct {
	index   int
	file    *ast.File
	content []byte
}

// listPackage loads and type-checks one package, then lists the mutants of
// each of its files into results. Per-file read and parse failures are
// recorded on the file; only cancellation and configuration defects abort.
func (w *workflow) listPackage(ctx context.Context, logger *slog.Logger, cfg Config, pkg packageGroup, results []m.FileResult) error {
	fset := token.NewFileSet()

	var parsed []parsedFile

	for _, idx := range pkg.indexes {
		path := results[idx].Source.Origin.FullPath

		content, err := w.ReadFile(path)
		if err != nil {
			results[idx].Err = fmt.Errorf("read %s: %w", path, err)
			continue
		}

		file, err := w.Parse(ctx, fset, string(path), content)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			results[idx].Err = err

			continue
		}

		parsed = append(parsed, parsedFile{index: idx, file: file, content: content})
	}

	if len(parsed) == 0 {
		return nil
	}

	files := make([]*ast.File, 0, len(parsed))
	for _, p := range parsed {
		files = append(files, p.file)
	}

	info, err := w.Check(ctx, fset, string(pkg.dir), files)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		logger.Warn("Type check reported errors, semantic answers may be partial", "package", pkg.dir, "error", err)
	}

	sem := syntax.NewTypesModel(info)

	for _, p := range parsed {
		if err := ctx.Err(); err != nil {
			return err
		}

		source := results[p.index].Source

		reports, err := w.listFile(fset, p, source, sem, cfg, logger.With("file", source.Origin.ShortPath))
		if err != nil {
			return err
		}

		results[p.index].Reports = reports
	}

	return nil
}

func (w *workflow) listFile(
	fset *token.FileSet,
	p parsedFile,
	source m.Source,
	sem syntax.SemanticModel,
	cfg Config,
	logger *slog.Logger,
) ([]m.Report, error) {
	orchestrator, err := NewOrchestrator(cfg, WithPlacer(w.Placer), WithLogger(logger))
	if err != nil {
		return nil, err
	}

	orchestrator.Mutate(p.file, sem)

	mutants := orchestrator.Mutants()
	reports := make([]m.Report, 0, len(mutants))

	for _, mutant := range mutants {
		reports = append(reports, w.report(fset, p.content, source, mutant, orchestrator.Placer(), logger))
	}

	logger.Debug("Listed mutants", "count", len(reports))

	return reports, nil
}

func (w *workflow) report(fset *token.FileSet, content []byte, source m.Source, mutant m.Mutant, placer Placer, logger *slog.Logger) m.Report {
	pos := fset.Position(mutant.Mutation.Original.Pos())

	report := m.Report{
		ID:          mutant.ID,
		File:        source.Origin.ShortPath,
		Line:        pos.Line,
		Column:      pos.Column,
		Kind:        mutant.Mutation.Kind,
		Mutagen:     mutant.Mutagen,
		Description: mutant.Mutation.Description,
		Status:      mutant.Status.String(),
		Static:      mutant.Static,
		Reason:      mutant.IgnoredReason,
	}

	if placer == nil {
		return report
	}

	mutated, err := placer.Place(fset, content, mutant)
	if err != nil {
		logger.Warn("Failed to place mutant", "id", mutant.ID, "error", err)
		return report
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(content)),
		B:        difflib.SplitLines(string(mutated)),
		FromFile: string(source.Origin.ShortPath),
		ToFile:   string(source.Origin.ShortPath) + " (mutated)",
		Context:  1,
	})
	if err != nil {
		logger.Warn("Failed to diff mutant", "id", mutant.ID, "error", err)
		return report
	}

	report.Diff = diff

	return report
}
