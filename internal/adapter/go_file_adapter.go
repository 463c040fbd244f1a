package adapter

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"

	"gooze.dev/pkg/mutor/internal/domain/syntax"
)

// GoFileAdapter encapsulates Go parsing and type checking so the domain layer
// can focus on mutation rules while delegating compilation details to an
// infrastructure component.
type GoFileAdapter interface {
	// Parse builds an AST, comments included, using the provided file set.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// Check type-checks the files of one package. The returned info is usable
	// even when err is non-nil: type errors are collected, not fatal.
	Check(ctx context.Context, fileSet *token.FileSet, pkgPath string, files []*ast.File) (*types.Info, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser and go/types.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := parser.ParseFile(fileSet, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return file, nil
}

// Check type-checks files as the package pkgPath, resolving imports from source.
func (a *LocalGoFileAdapter) Check(ctx context.Context, fileSet *token.FileSet, pkgPath string, files []*ast.File) (*types.Info, error) {
	info := syntax.NewInfo()

	if err := ctx.Err(); err != nil {
		return info, err
	}

	var typeErrs []error

	conf := types.Config{
		Importer: importer.ForCompiler(fileSet, "source", nil),
		Error: func(err error) {
			typeErrs = append(typeErrs, err)
		},
	}

	// With an Error callback Check keeps going and fills info as far as it can.
	_, _ = conf.Check(pkgPath, fileSet, files, info)

	if len(typeErrs) > 0 {
		return info, fmt.Errorf("type-check %s: %w", pkgPath, errors.Join(typeErrs...))
	}

	return info, nil
}
