package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gauntlet.dev/pkg/gauntlet/internal/domain"
	domainmocks "gauntlet.dev/pkg/gauntlet/internal/domain/mocks"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

func TestViewCmd_ResolvesReport(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want m.Path
	}{
		{"reports directory by default", []string{"view"}, ".gauntlet-reports"},
		{"root output flag", []string{"view", "--output", "./reports-dir"}, "./reports-dir"},
		{"explicit report file", []string{"view", "./reports-dir/abc.yaml"}, "./reports-dir/abc.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			swapWorkflow(t, mockWorkflow)

			mockWorkflow.EXPECT().
				View(mock.Anything, domain.ViewArgs{Report: tt.want}).
				Return(nil).
				Once()

			cmd, _ := newTestRoot(t, newViewCmd())
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
		})
	}
}

func TestViewCmd_RejectsExtraArgs(t *testing.T) {
	swapWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRoot(t, newViewCmd())
	cmd.SetArgs([]string{"view", "a.yaml", "b.yaml"})

	require.Error(t, cmd.Execute())
}
