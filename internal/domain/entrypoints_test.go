package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/lit/internal/model"
)

func TestParseEntryPoint(t *testing.T) {
	tests := []struct {
		spec string
		want m.EntryPoint
	}{
		{"T", m.EntryPoint{Name: "T"}},
		{" Tr ", m.EntryPoint{Name: "Tr"}},
		{"i18n.T", m.EntryPoint{Qualifier: "i18n", Name: "T"}},
		{"*.Tr", m.EntryPoint{Qualifier: "*", Name: "Tr"}},
		{"github.com/acme/i18n.T", m.EntryPoint{Qualifier: "github.com/acme/i18n", Name: "T"}},
		{"ctx.Locale.Tr", m.EntryPoint{Qualifier: "ctx.Locale", Name: "Tr"}},
		{"Localizer.Translate:1", m.EntryPoint{Qualifier: "Localizer", Name: "Translate", Arg: 1}},
		{"gopkg.in/acme/i18n.v2.T:0", m.EntryPoint{Qualifier: "gopkg.in/acme/i18n.v2", Name: "T"}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseEntryPoint(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEntryPoint_Invalid(t *testing.T) {
	for _, spec := range []string{"", "i18n.", "T:x", "T:-1", "1T", "i18n.T-x", "my pkg.T"} {
		t.Run(spec, func(t *testing.T) {
			_, err := ParseEntryPoint(spec)
			require.Error(t, err)
		})
	}
}

func TestParseEntryPoints(t *testing.T) {
	entryPoints, err := ParseEntryPoints([]string{"T", "i18n.T", "T"})
	require.NoError(t, err)
	assert.Equal(t, []m.EntryPoint{{Name: "T"}, {Qualifier: "i18n", Name: "T"}}, entryPoints)

	_, err = ParseEntryPoints(nil)
	require.Error(t, err)

	_, err = ParseEntryPoints([]string{"T", "bad:"})
	require.Error(t, err)
}
