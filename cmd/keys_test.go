package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/lit/internal/domain"
)

func TestKeysCmd_Sorted(t *testing.T) {
	chdirTemp(t)
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Keys(mock.Anything, mock.MatchedBy(func(args domain.KeysArgs) bool {
		return args.Sorted && len(args.Paths) == 0
	})).Return(nil).Once()

	cmd := newTestRootCmd(newKeysCmd)
	cmd.SetArgs([]string{"keys", "--sorted"})

	require.NoError(t, cmd.Execute())
}

func TestKeysCmd_InsertionOrderByDefault(t *testing.T) {
	chdirTemp(t)
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Keys(mock.Anything, mock.MatchedBy(func(args domain.KeysArgs) bool {
		return !args.Sorted
	})).Return(nil).Once()

	cmd := newTestRootCmd(newKeysCmd)
	cmd.SetArgs([]string{"keys", "./..."})

	require.NoError(t, cmd.Execute())
}
