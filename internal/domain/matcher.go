package domain

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"regexp"
	"strconv"
	"strings"

	m "gooze.dev/pkg/lit/internal/model"
)

// importTable maps the package names visible in one file to import paths.
type importTable struct {
	byName map[string]string
	dot    []string
}

func newImportTable(file *ast.File) importTable {
	table := importTable{byName: make(map[string]string, len(file.Imports))}

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := packageName(path)
		if spec.Name != nil {
			name = spec.Name.Name
		}

		switch name {
		case "_":
		case ".":
			table.dot = append(table.dot, path)
		default:
			table.byName[name] = path
		}
	}

	return table
}

var (
	majorVersionElem = regexp.MustCompile(`^v[0-9]+$`)
	gopkgInSuffix    = regexp.MustCompile(`\.v[0-9]+$`)
)

// packageName guesses the declared name of the package at importPath: the
// last path element, skipping a /vN major version element.
func packageName(importPath string) string {
	elems := strings.Split(importPath, "/")

	name := elems[len(elems)-1]
	if len(elems) > 1 && majorVersionElem.MatchString(name) {
		name = elems[len(elems)-2]
	}

	if strings.HasPrefix(importPath, "gopkg.in/") {
		name = gopkgInSuffix.ReplaceAllString(name, "")
	}

	return name
}

func packageMatches(qualifier, importPath string) bool {
	return qualifier == AnyQualifier || qualifier == importPath || qualifier == packageName(importPath)
}

// receiverMatches compares a configured qualifier with a receiver expression
// such as "localizer" or "ctx.Locale". last is the final selector element.
func receiverMatches(qualifier, receiver, last string) bool {
	return qualifier == AnyQualifier || qualifier == receiver || qualifier == last
}

// FindCallSites lazily yields, in pre-order, every call in file whose callee
// is one of entryPoints. Import aliases are resolved per file. src is the
// text file was parsed from and is used for argument source text.
func FindCallSites(fset *token.FileSet, file *ast.File, src []byte, entryPoints []m.EntryPoint) iter.Seq[m.CallSite] {
	imports := newImportTable(file)

	return func(yield func(m.CallSite) bool) {
		for node := range ast.Preorder(file) {
			call, ok := node.(*ast.CallExpr)
			if !ok {
				continue
			}

			target, entryPoint, ok := matchCall(call, imports, entryPoints)
			if !ok {
				continue
			}

			if !yield(newGoCallSite(fset, src, call, target, entryPoint)) {
				return
			}
		}
	}
}

func matchCall(call *ast.CallExpr, imports importTable, entryPoints []m.EntryPoint) (string, m.EntryPoint, bool) {
	switch fun := unwrapCallee(call.Fun).(type) {
	case *ast.Ident:
		return matchPlainCall(fun.Name, imports, entryPoints)

	case *ast.SelectorExpr:
		name := fun.Sel.Name

		if ident, ok := fun.X.(*ast.Ident); ok {
			if path, isImport := imports.byName[ident.Name]; isImport {
				for _, entryPoint := range entryPoints {
					if entryPoint.Name == name && entryPoint.Qualifier != "" && packageMatches(entryPoint.Qualifier, path) {
						return packageName(path) + "." + name, entryPoint, true
					}
				}

				return "", m.EntryPoint{}, false
			}
		}

		receiver := types.ExprString(fun.X)
		last := lastSelector(fun.X)

		for _, entryPoint := range entryPoints {
			if entryPoint.Name == name && entryPoint.Qualifier != "" && receiverMatches(entryPoint.Qualifier, receiver, last) {
				return receiver + "." + name, entryPoint, true
			}
		}
	}

	return "", m.EntryPoint{}, false
}

func matchPlainCall(name string, imports importTable, entryPoints []m.EntryPoint) (string, m.EntryPoint, bool) {
	for _, entryPoint := range entryPoints {
		if entryPoint.Name != name {
			continue
		}

		if entryPoint.Qualifier == "" {
			return name, entryPoint, true
		}

		if entryPoint.Qualifier == AnyQualifier {
			continue
		}

		for _, path := range imports.dot {
			if packageMatches(entryPoint.Qualifier, path) {
				return packageName(path) + "." + name, entryPoint, true
			}
		}
	}

	return "", m.EntryPoint{}, false
}

// unwrapCallee strips parentheses and generic instantiations from a callee.
func unwrapCallee(expr ast.Expr) ast.Expr {
	for {
		switch e := expr.(type) {
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		default:
			return expr
		}
	}
}

func lastSelector(expr ast.Expr) string {
	switch e := unwrapCallee(expr).(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.StarExpr:
		return lastSelector(e.X)
	default:
		return types.ExprString(expr)
	}
}

func newGoCallSite(fset *token.FileSet, src []byte, call *ast.CallExpr, target string, entryPoint m.EntryPoint) m.CallSite {
	pos := fset.Position(call.Pos())

	args := make([]m.Argument, 0, len(call.Args))
	for _, arg := range call.Args {
		args = append(args, m.Argument{Node: arg, Source: nodeSource(fset, src, arg)})
	}

	return m.CallSite{
		Location: m.Location{
			File:   m.Path(pos.Filename),
			Line:   pos.Line,
			Column: pos.Column,
		},
		Target:     target,
		EntryPoint: entryPoint,
		Args:       args,
	}
}

// nodeSource returns the source text of expr, or a rendering of it when src
// does not cover the node.
func nodeSource(fset *token.FileSet, src []byte, expr ast.Expr) string {
	start := fset.Position(expr.Pos()).Offset
	end := fset.Position(expr.End()).Offset

	if start >= 0 && start <= end && end <= len(src) {
		return string(src[start:end])
	}

	return types.ExprString(expr)
}
