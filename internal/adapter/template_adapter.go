package adapter

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strconv"
	"text/template/parse"

	m "gooze.dev/pkg/lit/internal/model"
)

const (
	// DefaultLeftDelim is the default template action opening delimiter.
	DefaultLeftDelim = "{{"
	// DefaultRightDelim is the default template action closing delimiter.
	DefaultRightDelim = "}}"
)

// TemplateAdapter parses Go text/template and html/template sources.
type TemplateAdapter interface {
	// Parse returns the main tree followed by every {{define}} tree, sorted by
	// name. Failures are reported as *model.ParseError.
	Parse(ctx context.Context, filename string, src []byte) ([]*parse.Tree, error)
}

// LocalTemplateAdapter parses templates with text/template/parse. Function
// names are not checked, so no FuncMap is needed.
type LocalTemplateAdapter struct {
	leftDelim  string
	rightDelim string
}

// NewLocalTemplateAdapter constructs a template adapter using the given
// delimiters. Empty delimiters fall back to the defaults.
func NewLocalTemplateAdapter(leftDelim, rightDelim string) *LocalTemplateAdapter {
	if leftDelim == "" {
		leftDelim = DefaultLeftDelim
	}

	if rightDelim == "" {
		rightDelim = DefaultRightDelim
	}

	return &LocalTemplateAdapter{leftDelim: leftDelim, rightDelim: rightDelim}
}

// Parse builds the template trees for filename.
func (a *LocalTemplateAdapter) Parse(ctx context.Context, filename string, src []byte) ([]*parse.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	treeSet := make(map[string]*parse.Tree)

	tree := parse.New(filename)
	tree.Mode = parse.ParseComments | parse.SkipFuncCheck

	if _, err := tree.Parse(string(src), a.leftDelim, a.rightDelim, treeSet); err != nil {
		return nil, templateParseError(filename, err)
	}

	names := make([]string, 0, len(treeSet))
	for name := range treeSet {
		if name != filename {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	trees := make([]*parse.Tree, 0, len(treeSet)+1)
	if tree.Root != nil {
		trees = append(trees, tree)
	}

	for _, name := range names {
		trees = append(trees, treeSet[name])
	}

	return trees, nil
}

// template errors look like "template: name:12:7: message" or "template: name:12: message".
var templateErrorPattern = regexp.MustCompile(`^template: .*?:(\d+)(?::(\d+))?: (.*)$`)

func templateParseError(filename string, err error) error {
	parseErr := &m.ParseError{File: m.Path(filename), Message: err.Error(), Err: err}

	if match := templateErrorPattern.FindStringSubmatch(err.Error()); match != nil {
		parseErr.Line, _ = strconv.Atoi(match[1])
		parseErr.Column, _ = strconv.Atoi(match[2])
		parseErr.Message = match[3]
	}

	return parseErr
}

// IsParseError reports whether err wraps a *model.ParseError.
func IsParseError(err error) bool {
	var parseErr *m.ParseError

	return errors.As(err, &parseErr)
}
