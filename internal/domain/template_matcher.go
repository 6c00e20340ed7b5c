package domain

import (
	"bytes"
	"cmp"
	"iter"
	"slices"
	"strings"
	"text/template/parse"

	m "gooze.dev/pkg/lit/internal/model"
)

// FindTemplateCallSites yields, in source order, every template command that
// calls one of entryPoints. Commands are recognised by their first word:
// T, .T, $.T, .Locale.Tr or ctx.Locale.Tr. A value piped into the command
// ({{ "key" | T }}) becomes its last argument.
//
// A single tree is walked lazily. The parser lifts {{define}} bodies into
// trees of their own, so with several trees the sites are gathered first and
// ordered by position.
func FindTemplateCallSites(filename string, src []byte, trees []*parse.Tree, entryPoints []m.EntryPoint) iter.Seq[m.CallSite] {
	return func(yield func(m.CallSite) bool) {
		w := templateWalker{
			filename:    filename,
			src:         src,
			entryPoints: entryPoints,
			yield:       yield,
		}

		if len(trees) == 1 {
			w.walk(trees[0].Root)
			return
		}

		var sites []m.CallSite

		w.yield = func(site m.CallSite) bool {
			sites = append(sites, site)
			return true
		}

		for _, tree := range trees {
			w.walk(tree.Root)
		}

		slices.SortStableFunc(sites, func(a, b m.CallSite) int {
			return cmp.Or(cmp.Compare(a.Location.Line, b.Location.Line), cmp.Compare(a.Location.Column, b.Location.Column))
		})

		for _, site := range sites {
			if !yield(site) {
				return
			}
		}
	}
}

type templateWalker struct {
	filename    string
	src         []byte
	entryPoints []m.EntryPoint
	yield       func(m.CallSite) bool
}

// walk visits node and its children, returning false once the consumer stops.
func (w *templateWalker) walk(node parse.Node) bool {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return true
		}

		for _, child := range n.Nodes {
			if !w.walk(child) {
				return false
			}
		}

	case *parse.ActionNode:
		return w.walkPipe(n.Pipe)

	case *parse.IfNode:
		return w.walkBranch(&n.BranchNode)

	case *parse.RangeNode:
		return w.walkBranch(&n.BranchNode)

	case *parse.WithNode:
		return w.walkBranch(&n.BranchNode)

	case *parse.TemplateNode:
		return w.walkPipe(n.Pipe)

	case *parse.PipeNode:
		return w.walkPipe(n)

	case *parse.ChainNode:
		return w.walk(n.Node)
	}

	return true
}

func (w *templateWalker) walkBranch(branch *parse.BranchNode) bool {
	if !w.walkPipe(branch.Pipe) {
		return false
	}

	if !w.walk(branch.List) {
		return false
	}

	if branch.ElseList == nil {
		return true
	}

	return w.walk(branch.ElseList)
}

func (w *templateWalker) walkPipe(pipe *parse.PipeNode) bool {
	if pipe == nil {
		return true
	}

	for i, cmd := range pipe.Cmds {
		if target, entryPoint, ok := w.match(cmd); ok {
			args := make([]m.Argument, 0, len(cmd.Args))
			for _, arg := range cmd.Args[1:] {
				args = append(args, m.Argument{Node: arg, Source: templateSource(arg)})
			}

			if i > 0 {
				piped := pipe.Cmds[i-1]
				args = append(args, m.Argument{Node: piped, Source: piped.String()})
			}

			site := m.CallSite{
				Location:   w.location(cmd.Position()),
				Target:     target,
				EntryPoint: entryPoint,
				Args:       args,
			}

			if !w.yield(site) {
				return false
			}
		}

		for _, arg := range cmd.Args {
			if !w.walk(arg) {
				return false
			}
		}
	}

	return true
}

func (w *templateWalker) match(cmd *parse.CommandNode) (string, m.EntryPoint, bool) {
	if len(cmd.Args) == 0 {
		return "", m.EntryPoint{}, false
	}

	var word string

	switch n := cmd.Args[0].(type) {
	case *parse.IdentifierNode:
		word = n.Ident
	case *parse.FieldNode:
		word = "." + strings.Join(n.Ident, ".")
	case *parse.VariableNode:
		word = strings.Join(n.Ident, ".")
	case *parse.ChainNode:
		word = n.String()
	default:
		return "", m.EntryPoint{}, false
	}

	target := strings.TrimPrefix(strings.TrimPrefix(word, "$"), ".")
	qualifier, name := "", target

	if i := strings.LastIndex(target, "."); i >= 0 {
		qualifier, name = target[:i], target[i+1:]
	}

	last := qualifier
	if i := strings.LastIndex(qualifier, "."); i >= 0 {
		last = qualifier[i+1:]
	}

	for _, entryPoint := range w.entryPoints {
		if entryPoint.Name != name {
			continue
		}

		if qualifier == "" && entryPoint.Qualifier == "" {
			return word, entryPoint, true
		}

		if qualifier != "" && entryPoint.Qualifier != "" && receiverMatches(entryPoint.Qualifier, qualifier, last) {
			return word, entryPoint, true
		}
	}

	return "", m.EntryPoint{}, false
}

// templateSource renders node as it appears in a command, keeping the
// parentheses around nested pipelines.
func templateSource(node parse.Node) string {
	if pipe, ok := node.(*parse.PipeNode); ok {
		return "(" + pipe.String() + ")"
	}

	return node.String()
}

func (w *templateWalker) location(pos parse.Pos) m.Location {
	offset := min(max(int(pos), 0), len(w.src))
	prefix := w.src[:offset]

	line := bytes.Count(prefix, []byte("\n")) + 1
	column := offset - bytes.LastIndexByte(prefix, '\n')

	return m.Location{File: m.Path(w.filename), Line: line, Column: column}
}
