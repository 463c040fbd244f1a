// Package adapter contains the infrastructure adapters of the mutor CLI.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	m "gooze.dev/pkg/mutor/internal/model"
)

// ErrMissingSource reports a requested path that does not exist.
var ErrMissingSource = errors.New("source path does not exist")

const recursiveSuffix = "/..."

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when scanning user projects, so the workflow can be tested without disk access.
type SourceFSAdapter interface {
	// Get resolves Go-style path patterns into the non-test Go sources they
	// name, sorted by path. Files whose path matches an exclude regex are dropped.
	Get(ctx context.Context, roots []m.Path, exclude ...string) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)
}

// LocalSourceFSAdapter is the SourceFSAdapter backed by the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get implements SourceFSAdapter. Supported patterns:
//
//	./...        every package below the current directory
//	./pkg/...    every package below pkg
//	./cmd        the cmd package only
//	./main.go    a single file
func (a *LocalSourceFSAdapter) Get(ctx context.Context, roots []m.Path, exclude ...string) ([]m.Source, error) {
	filters, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		roots = []m.Path{"." + recursiveSuffix}
	}

	seen := make(map[m.Path]struct{})

	var sources []m.Source

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := a.collect(ctx, string(root))
		if err != nil {
			return nil, err
		}

		for _, source := range found {
			if excluded(filters, string(source.Origin.ShortPath)) {
				continue
			}

			if _, dup := seen[source.Origin.FullPath]; dup {
				continue
			}

			seen[source.Origin.FullPath] = struct{}{}
			sources = append(sources, source)
		}
	}

	slices.SortFunc(sources, func(x, y m.Source) int {
		return strings.Compare(string(x.Origin.ShortPath), string(y.Origin.ShortPath))
	})

	return sources, nil
}

func (a *LocalSourceFSAdapter) collect(ctx context.Context, pattern string) ([]m.Source, error) {
	root, recursive := strings.CutSuffix(filepath.ToSlash(pattern), recursiveSuffix)
	if root == "" {
		root = "."
	}

	root = filepath.FromSlash(root)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, pattern)
		}

		return nil, fmt.Errorf("stat %s: %w", pattern, err)
	}

	if !info.IsDir() {
		if !isSourceFile(root) {
			return nil, nil
		}

		source, err := newSource(root)
		if err != nil {
			return nil, err
		}

		return []m.Source{source}, nil
	}

	var sources []m.Source

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path == root {
				return nil
			}

			if !recursive || skippedDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !isSourceFile(path) {
			return nil
		}

		source, err := newSource(path)
		if err != nil {
			return err
		}

		sources = append(sources, source)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", pattern, err)
	}

	return sources, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

func newSource(path string) (m.Source, error) {
	full, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	return m.Source{
		Origin: &m.File{
			ShortPath: m.Path(filepath.Clean(path)),
			FullPath:  m.Path(full),
		},
		Package: m.Path(filepath.Dir(full)),
	}, nil
}

func isSourceFile(path string) bool {
	return filepath.Ext(path) == ".go" && !strings.HasSuffix(path, "_test.go")
}

// skippedDir matches the directories the go tool ignores in ./... patterns.
func skippedDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	filters := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filters = append(filters, re)
	}

	return filters, nil
}

func excluded(filters []*regexp.Regexp, path string) bool {
	slashed := filepath.ToSlash(path)

	for _, re := range filters {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}
