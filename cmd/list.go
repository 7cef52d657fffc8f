package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gauntlet.dev/pkg/gauntlet/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [project]",
		Short: "List mutation candidates",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := tierFromConfig()
			if err != nil {
				return err
			}

			return workflow.Estimate(cmd.Context(), domain.EstimateArgs{
				Subject: subjectFromConfig(projectDir(args)),
				Tier:    tier,
				Seed:    viper.GetUint64(seedConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
