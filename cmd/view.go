package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gauntlet.dev/pkg/gauntlet/internal/domain"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a saved session report",
		Long: `View a saved session report. Without an argument the newest report in
the reports directory is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := m.Path(viper.GetString(outputFlagName))
			if len(args) == 1 {
				report = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: report})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
