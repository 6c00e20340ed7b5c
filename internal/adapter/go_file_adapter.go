package adapter

import (
	"context"
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"

	m "gooze.dev/pkg/lit/internal/model"
)

// GoFileAdapter hides go/parser behind an interface so the domain layer can
// be exercised with in-memory sources.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	// Failures are reported as *model.ParseError.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
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

	file, err := parser.ParseFile(fileSet, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, goParseError(filename, err)
	}

	return file, nil
}

func goParseError(filename string, err error) error {
	parseErr := &m.ParseError{File: m.Path(filename), Message: err.Error(), Err: err}

	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first := list[0]
		parseErr.Line = first.Pos.Line
		parseErr.Column = first.Pos.Column
		parseErr.Message = first.Msg
	}

	return parseErr
}
