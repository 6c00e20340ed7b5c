package domain

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/lit/internal/adapter"
	m "gooze.dev/pkg/lit/internal/model"
)

func templateCallSites(t *testing.T, src string, specs ...string) []m.CallSite {
	t.Helper()

	trees, err := adapter.NewLocalTemplateAdapter("", "").Parse(context.Background(), "page.tmpl", []byte(src))
	require.NoError(t, err)

	return slices.Collect(FindTemplateCallSites("page.tmpl", []byte(src), trees, mustEntryPoints(t, specs...)))
}

func TestFindTemplateCallSites_Forms(t *testing.T) {
	src := `<h1>{{ T "home.title" }}</h1>
<p>{{ .T "home.intro" }}</p>
<p>{{ $.Locale.Tr "home.body" }}</p>
<p>{{ .Locale.Tr "home.footer" }}</p>
<p>{{ upper "not.a.key" }}</p>`

	sites := templateCallSites(t, src, DefaultEntryPoints...)
	assert.Equal(t, []string{"T", ".T", "$.Locale.Tr", ".Locale.Tr"}, targets(sites))

	assert.Equal(t, m.Location{File: "page.tmpl", Line: 1, Column: 8}, sites[0].Location)
	assert.Equal(t, 2, sites[1].Location.Line)
	assert.Equal(t, `"home.body"`, sites[2].Args[0].Source)
}

func TestFindTemplateCallSites_QualifiedEntryPoint(t *testing.T) {
	src := `{{ .Locale.Tr "a" }}{{ .Session.Tr "b" }}{{ Tr "c" }}`

	sites := templateCallSites(t, src, "Locale.Tr")
	require.Len(t, sites, 1)
	assert.Equal(t, `"a"`, sites[0].Args[0].Source)
}

func TestFindTemplateCallSites_Pipeline(t *testing.T) {
	src := `{{ "nav.home" | T }}{{ T "nav.about" | printf "%s!" }}`

	sites := templateCallSites(t, src, "T")
	require.Len(t, sites, 2)
	require.Len(t, sites[0].Args, 1)
	assert.Equal(t, `"nav.home"`, sites[0].Args[0].Source)
	assert.Equal(t, `"nav.about"`, sites[1].Args[0].Source)
}

func TestFindTemplateCallSites_NestedAndBranches(t *testing.T) {
	src := `{{ define "menu" }}{{ T "menu.title" }}{{ end }}
{{ if .User }}{{ T "user.hello" }}{{ else }}{{ T "user.login" }}{{ end }}
{{ range .Items }}{{ printf "%s: %s" (T "item.label") .Name }}{{ end }}
{{ with .Error }}{{ T . }}{{ end }}
{{ template "menu" (T "menu.arg") }}`

	sites := templateCallSites(t, src, "T")
	assert.Len(t, sites, 6)

	var keys []string

	for _, site := range sites {
		if key, ok := ResolveKey(site).Literal(); ok {
			keys = append(keys, key)
		}
	}

	assert.Equal(t, []string{"menu.title", "user.hello", "user.login", "item.label", "menu.arg"}, keys)
}

func TestFindTemplateCallSites_DefineBlocksInSourceOrder(t *testing.T) {
	src := `{{ T "page.top" }}
{{ define "footer" }}{{ T .Dynamic }}{{ T "footer.text" }}{{ end }}
{{ T "page.bottom" }}{{ template "footer" . }}`

	sites := templateCallSites(t, src, "T")
	require.Len(t, sites, 4)

	var lines []int
	for _, site := range sites {
		lines = append(lines, site.Location.Line)
	}

	assert.Equal(t, []int{1, 2, 2, 3}, lines)
	assert.Equal(t, ".Dynamic", sites[1].Args[0].Source)
	assert.Less(t, sites[1].Location.Column, sites[2].Location.Column)

	trees, err := adapter.NewLocalTemplateAdapter("", "").Parse(context.Background(), "page.tmpl", []byte(src))
	require.NoError(t, err)
	require.Len(t, trees, 2)

	var seen []string
	for site := range FindTemplateCallSites("page.tmpl", []byte(src), trees, mustEntryPoints(t, "T")) {
		seen = append(seen, site.Args[0].Source)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []string{`"page.top"`, ".Dynamic"}, seen)
}

func TestFindTemplateCallSites_ZeroArguments(t *testing.T) {
	sites := templateCallSites(t, `{{ T }}`, "T")
	require.Len(t, sites, 1)
	assert.Empty(t, sites[0].Args)
	assert.Equal(t, m.ReasonMissing, ResolveKey(sites[0]).Reason())
}
