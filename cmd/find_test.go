package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/lit/internal/domain"
	m "gooze.dev/pkg/lit/internal/model"
)

func TestFindCmd_Defaults(t *testing.T) {
	chdirTemp(t)
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Find(mock.Anything, mock.MatchedBy(func(args domain.FindArgs) bool {
		return args.Locale == "fr" &&
			args.BaseLocale == defaultLocaleBase &&
			!args.Sorted &&
			args.Report == "" &&
			args.Metrics == "" &&
			len(args.Paths) == 0 &&
			len(args.EntryPoints) == len(domain.DefaultEntryPoints) &&
			args.Threads == defaultScanParallel
	})).Return(nil).Once()

	cmd := newTestRootCmd(newFindCmd)
	cmd.SetArgs([]string{"find", "fr"})

	require.NoError(t, cmd.Execute())
}

func TestFindCmd_Flags(t *testing.T) {
	chdirTemp(t)
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Find(mock.Anything, mock.MatchedBy(func(args domain.FindArgs) bool {
		return args.Locale == "de" &&
			args.BaseLocale == "en-GB" &&
			args.Sorted &&
			args.Threads == 3 &&
			args.Report == m.Path("out/report.yaml") &&
			args.Metrics == m.Path("out/lit.prom") &&
			len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("./web/...") &&
			args.Paths[1] == m.Path("./cmd")
	})).Return(nil).Once()

	cmd := newTestRootCmd(newFindCmd)
	cmd.SetArgs([]string{
		"find", "de", "./web/...", "./cmd",
		"--sorted", "-p", "3", "--base", "en-GB",
		"--report", "out/report.yaml", "--metrics", "out/lit.prom",
	})

	require.NoError(t, cmd.Execute())
}

func TestFindCmd_ExcludeAndVerbose(t *testing.T) {
	chdirTemp(t)
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Find(mock.Anything, mock.MatchedBy(func(args domain.FindArgs) bool {
		return args.Verbose &&
			len(args.Exclude) == 2 &&
			args.Exclude[0] == "^generated_" &&
			args.Exclude[1] == "_test\\.go$"
	})).Return(nil).Once()

	cmd := newTestRootCmd(newFindCmd)
	cmd.SetArgs([]string{"find", "fr", "-v", "-x", "^generated_", "-x", "_test\\.go$"})

	require.NoError(t, cmd.Execute())
}

func TestFindCmd_RequiresLocale(t *testing.T) {
	chdirTemp(t)
	withMockWorkflow(t)

	cmd := newTestRootCmd(newFindCmd)
	cmd.SetArgs([]string{"find"})

	require.Error(t, cmd.Execute())
}

func TestFindCmd_PropagatesWorkflowError(t *testing.T) {
	chdirTemp(t)
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Find(mock.Anything, mock.Anything).Return(m.ErrSameLocale).Once()

	cmd := newTestRootCmd(newFindCmd)
	cmd.SetArgs([]string{"find", "en"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrSameLocale))
}
