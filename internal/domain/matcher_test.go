package domain

import (
	"go/parser"
	"go/token"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/lit/internal/model"
)

func mustEntryPoints(t *testing.T, specs ...string) []m.EntryPoint {
	t.Helper()

	entryPoints, err := ParseEntryPoints(specs)
	require.NoError(t, err)

	return entryPoints
}

func goCallSites(t *testing.T, src string, specs ...string) []m.CallSite {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "a.go", src, parser.SkipObjectResolution)
	require.NoError(t, err)

	return slices.Collect(FindCallSites(fset, file, []byte(src), mustEntryPoints(t, specs...)))
}

func targets(sites []m.CallSite) []string {
	out := make([]string, 0, len(sites))
	for _, site := range sites {
		out = append(out, site.Target)
	}

	return out
}

func TestFindCallSites_PlainAndQualified(t *testing.T) {
	src := `package main

import (
	"fmt"

	"github.com/acme/i18n"
)

func main() {
	T("greeting.hello")
	i18n.T("greeting.bye")
	fmt.Println(T("nav.home"))
	t := 1
	_ = t
}
`

	sites := goCallSites(t, src, "T", "i18n.T")
	assert.Equal(t, []string{"T", "i18n.T", "T"}, targets(sites))

	assert.Equal(t, m.Location{File: "a.go", Line: 10, Column: 2}, sites[0].Location)
	assert.Equal(t, m.Location{File: "a.go", Line: 12, Column: 14}, sites[2].Location)
	assert.Equal(t, `"greeting.bye"`, sites[1].Args[0].Source)
}

func TestFindCallSites_ImportAliasAndPath(t *testing.T) {
	src := `package main

import (
	tr "github.com/acme/i18n/v2"
	"github.com/other/i18n"
)

func main() {
	tr.T("a")
	i18n.T("b")
}
`

	sites := goCallSites(t, src, "github.com/acme/i18n/v2.T")
	require.Len(t, sites, 1)
	assert.Equal(t, "i18n.T", sites[0].Target)
	assert.Equal(t, `"a"`, sites[0].Args[0].Source)

	sites = goCallSites(t, src, "i18n.T")
	assert.Len(t, sites, 2)
}

func TestFindCallSites_AliasShadowsDefaultName(t *testing.T) {
	src := `package main

import (
	i18n "github.com/acme/translations"
)

func main() {
	i18n.T("a")
}
`

	assert.Empty(t, goCallSites(t, src, "github.com/other/i18n.T"))
	assert.Len(t, goCallSites(t, src, "translations.T"), 1)
}

func TestFindCallSites_DotImport(t *testing.T) {
	src := `package main

import . "github.com/acme/i18n"

func main() {
	T("a")
}
`

	sites := goCallSites(t, src, "i18n.T")
	require.Len(t, sites, 1)
	assert.Equal(t, "i18n.T", sites[0].Target)

	assert.Empty(t, goCallSites(t, src, "other.T"))
}

func TestFindCallSites_Receivers(t *testing.T) {
	src := `package main

func handler(localizer *Localizer, ctx *Context) {
	localizer.Tr("a")
	ctx.Locale.Tr("b")
	(ctx.Locale).Tr("c")
	other.Translate("d")
}
`

	sites := goCallSites(t, src, "localizer.Tr")
	assert.Equal(t, []string{"localizer.Tr"}, targets(sites))

	sites = goCallSites(t, src, "Locale.Tr")
	assert.Equal(t, []string{"ctx.Locale.Tr", "(ctx.Locale).Tr"}, targets(sites))

	sites = goCallSites(t, src, "ctx.Locale.Tr")
	assert.Len(t, sites, 1)

	sites = goCallSites(t, src, "*.Tr")
	assert.Len(t, sites, 3)
}

func TestFindCallSites_AnyQualifierDoesNotMatchPlainCalls(t *testing.T) {
	src := `package main

func main() {
	Tr("a")
	x.Tr("b")
}
`

	sites := goCallSites(t, src, "*.Tr")
	assert.Equal(t, []string{"x.Tr"}, targets(sites))
}

func TestFindCallSites_GenericsAndParens(t *testing.T) {
	src := `package main

func main() {
	T[string]("a")
	(T)("b")
	Map[int, string]("c")
}
`

	sites := goCallSites(t, src, "T", "Map")
	assert.Equal(t, []string{"T", "T", "Map"}, targets(sites))
}

func TestFindCallSites_PreOrderNestedAndZeroArgs(t *testing.T) {
	src := `package main

func main() {
	T(T("inner"), T())
}
`

	sites := goCallSites(t, src, "T")
	require.Len(t, sites, 3)
	assert.Len(t, sites[0].Args, 2)
	assert.Equal(t, `T("inner")`, sites[0].Args[0].Source)
	assert.Equal(t, `"inner"`, sites[1].Args[0].Source)
	assert.Empty(t, sites[2].Args)
}

func TestFindCallSites_StopsWhenConsumerStops(t *testing.T) {
	src := `package main

func main() {
	T("a")
	T("b")
	T("c")
}
`

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "a.go", src, 0)
	require.NoError(t, err)

	var seen int
	for range FindCallSites(fset, file, []byte(src), mustEntryPoints(t, "T")) {
		seen++
		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
}

func TestPackageName(t *testing.T) {
	tests := map[string]string{
		"fmt":                                   "fmt",
		"github.com/acme/i18n":                  "i18n",
		"github.com/acme/i18n/v2":               "i18n",
		"gopkg.in/yaml.v3":                      "yaml",
		"github.com/nicksnyder/go-i18n/v2/i18n": "i18n",
	}

	for path, want := range tests {
		assert.Equal(t, want, packageName(path), path)
	}
}
