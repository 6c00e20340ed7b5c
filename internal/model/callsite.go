package model

import "fmt"

// Location is a position inside a source file.
type Location struct {
	File   Path
	Line   int
	Column int
}

func (l Location) String() string {
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}

	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// EntryPoint is a configured translation function or method.
//
// Qualifier is empty for plain calls, "*" for any receiver or package, and
// otherwise a package name, an import path, or a receiver expression such as
// "localizer" or "ctx.Locale". Arg is the index of the key argument.
type EntryPoint struct {
	Qualifier string
	Name      string
	Arg       int
}

func (e EntryPoint) String() string {
	s := e.Name
	if e.Qualifier != "" {
		s = e.Qualifier + "." + e.Name
	}

	if e.Arg > 0 {
		s = fmt.Sprintf("%s:%d", s, e.Arg)
	}

	return s
}

// Argument is a single call argument. Node holds the syntax node (an ast.Expr
// for Go sources, a parse.Node for templates) and Source its raw text.
type Argument struct {
	Node   any
	Source string
}

// CallSite is a call to one of the configured entry points.
type CallSite struct {
	Location   Location
	Target     string
	EntryPoint EntryPoint
	Args       []Argument
}

// KeyArgument returns the argument holding the translation key.
func (c CallSite) KeyArgument() (Argument, bool) {
	if c.EntryPoint.Arg < 0 || c.EntryPoint.Arg >= len(c.Args) {
		return Argument{}, false
	}

	return c.Args[c.EntryPoint.Arg], true
}
