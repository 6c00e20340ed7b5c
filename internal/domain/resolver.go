package domain

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"text/template/parse"

	m "gooze.dev/pkg/lit/internal/model"
)

// ResolveKey evaluates the key argument of call (the first argument unless
// the entry point says otherwise). It never fails: arguments that are not
// constant strings resolve to a rejection carrying their source text.
func ResolveKey(call m.CallSite) m.ResolvedKey {
	arg, ok := call.KeyArgument()
	if !ok {
		return m.Rejected(m.ReasonMissing, "")
	}

	if key, ok := constantString(arg.Node); ok {
		return m.Literal(key)
	}

	return m.Rejected(m.ReasonNonString, arg.Source)
}

func constantString(node any) (string, bool) {
	switch n := node.(type) {
	case ast.Expr:
		return goConstantString(n)
	case parse.Node:
		return templateConstantString(n)
	default:
		return "", false
	}
}

// goConstantString folds string literals and "+" concatenations of them.
func goConstantString(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.STRING {
			return "", false
		}

		value, err := strconv.Unquote(e.Value)
		if err != nil {
			return "", false
		}

		return value, true

	case *ast.ParenExpr:
		return goConstantString(e.X)

	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			return "", false
		}

		left, ok := goConstantString(e.X)
		if !ok {
			return "", false
		}

		right, ok := goConstantString(e.Y)
		if !ok {
			return "", false
		}

		return left + right, true
	}

	return "", false
}

// templateConstantString accepts quoted strings, parenthesised pipelines
// holding one, and (print "a" "b") over string operands.
func templateConstantString(node parse.Node) (string, bool) {
	switch n := node.(type) {
	case *parse.StringNode:
		return n.Text, true

	case *parse.PipeNode:
		if len(n.Decl) > 0 || len(n.Cmds) != 1 {
			return "", false
		}

		return templateConstantString(n.Cmds[0])

	case *parse.CommandNode:
		if len(n.Args) == 1 {
			return templateConstantString(n.Args[0])
		}

		return templatePrint(n)
	}

	return "", false
}

func templatePrint(cmd *parse.CommandNode) (string, bool) {
	if len(cmd.Args) < 2 {
		return "", false
	}

	ident, ok := cmd.Args[0].(*parse.IdentifierNode)
	if !ok || ident.Ident != "print" {
		return "", false
	}

	var b strings.Builder

	for _, arg := range cmd.Args[1:] {
		str, ok := arg.(*parse.StringNode)
		if !ok {
			return "", false
		}

		b.WriteString(str.Text)
	}

	return b.String(), true
}
