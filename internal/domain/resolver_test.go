package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/lit/internal/model"
)

func TestResolveKey_Go(t *testing.T) {
	tests := []struct {
		name       string
		call       string
		wantKey    string
		wantReason m.RejectReason
		wantSource string
	}{
		{name: "interpreted string", call: `T("greeting.hello")`, wantKey: "greeting.hello"},
		{name: "raw string", call: "T(`greeting.raw`)", wantKey: "greeting.raw"},
		{name: "escapes", call: `T("tab\tkey")`, wantKey: "tab\tkey"},
		{name: "empty string", call: `T("")`, wantKey: ""},
		{name: "concatenation", call: `T("greeting." + ("bye"))`, wantKey: "greeting.bye"},
		{name: "identifier", call: `T(name)`, wantReason: m.ReasonNonString, wantSource: "name"},
		{name: "sprintf", call: `T(fmt.Sprintf("x.%s", id))`, wantReason: m.ReasonNonString, wantSource: `fmt.Sprintf("x.%s", id)`},
		{name: "number", call: `T(42)`, wantReason: m.ReasonNonString, wantSource: "42"},
		{name: "concatenation with variable", call: `T("a." + b)`, wantReason: m.ReasonNonString, wantSource: `"a." + b`},
		{name: "no arguments", call: `T()`, wantReason: m.ReasonMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "package main\n\nfunc main() {\n\t" + tt.call + "\n}\n"
			sites := goCallSites(t, src, "T")
			require.Len(t, sites, 1)

			resolved := ResolveKey(sites[0])

			if tt.wantReason == "" {
				key, ok := resolved.Literal()
				require.True(t, ok)
				assert.Equal(t, tt.wantKey, key)

				return
			}

			assert.Equal(t, tt.wantReason, resolved.Reason())
			assert.Equal(t, tt.wantSource, resolved.Source())
		})
	}
}

func TestResolveKey_ArgumentIndex(t *testing.T) {
	src := "package main\n\nfunc main() {\n\tloc.Translate(ctx, \"home.title\")\n\tloc.Translate(ctx)\n}\n"

	sites := goCallSites(t, src, "loc.Translate:1")
	require.Len(t, sites, 2)

	key, ok := ResolveKey(sites[0]).Literal()
	require.True(t, ok)
	assert.Equal(t, "home.title", key)

	assert.Equal(t, m.ReasonMissing, ResolveKey(sites[1]).Reason())
}

func TestResolveKey_Template(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantKey    string
		wantReason m.RejectReason
		wantSource string
	}{
		{name: "string", src: `{{ T "a.b" }}`, wantKey: "a.b"},
		{name: "raw string", src: "{{ T `a.raw` }}", wantKey: "a.raw"},
		{name: "parenthesised string", src: `{{ T ("a.c") }}`, wantKey: "a.c"},
		{name: "print of strings", src: `{{ T (print "a." "d") }}`, wantKey: "a.d"},
		{name: "field", src: `{{ T .Key }}`, wantReason: m.ReasonNonString, wantSource: ".Key"},
		{name: "variable", src: `{{ $k := "x" }}{{ T $k }}`, wantReason: m.ReasonNonString, wantSource: "$k"},
		{name: "print with field", src: `{{ T (print "a." .ID) }}`, wantReason: m.ReasonNonString, wantSource: `(print "a." .ID)`},
		{name: "number", src: `{{ T 3 }}`, wantReason: m.ReasonNonString, wantSource: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sites := templateCallSites(t, tt.src, "T")
			require.Len(t, sites, 1)

			resolved := ResolveKey(sites[0])

			if tt.wantReason == "" {
				key, ok := resolved.Literal()
				require.True(t, ok)
				assert.Equal(t, tt.wantKey, key)

				return
			}

			assert.Equal(t, tt.wantReason, resolved.Reason())
			assert.Equal(t, tt.wantSource, resolved.Source())
		})
	}
}

func TestResolveKey_UnknownNode(t *testing.T) {
	call := m.CallSite{Args: []m.Argument{{Node: 42, Source: "42"}}}

	resolved := ResolveKey(call)
	assert.Equal(t, m.ReasonNonString, resolved.Reason())
	assert.Equal(t, "42", resolved.Source())
}
