package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runParallelFlag int
var testCommandFlag string
var mutationTimeoutFlag time.Duration
var coverageTimeoutFlag time.Duration
var scheduleThresholdFlag int
var retriesFlag int
var metricsFileFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [project]",
		Short: "Run mutation testing",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runArgs, err := runArgsFromConfig(projectDir(args))
			if err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), runArgs)
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of execution environments")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVarP(&testCommandFlag, testCommandFlagName, "c", viper.GetString(testCommandConfigKey), "test host command line, run inside each environment")
	bindFlagToConfig(cmd.Flags().Lookup(testCommandFlagName), testCommandConfigKey)

	cmd.Flags().DurationVar(&mutationTimeoutFlag, mutationTimeoutFlagName, viper.GetDuration(mutationTimeoutKey), "per-round time budget (0 derives it from the coverage pass)")
	bindFlagToConfig(cmd.Flags().Lookup(mutationTimeoutFlagName), mutationTimeoutKey)

	cmd.Flags().DurationVar(&coverageTimeoutFlag, coverageTimeoutFlagName, viper.GetDuration(coverageTimeoutKey), "time budget for the coverage pass")
	bindFlagToConfig(cmd.Flags().Lookup(coverageTimeoutFlagName), coverageTimeoutKey)

	cmd.Flags().IntVar(&scheduleThresholdFlag, scheduleThresholdFlagName, viper.GetInt(scheduleThresholdConfigKey), "largest candidate count scheduled with the optimal strategy")
	bindFlagToConfig(cmd.Flags().Lookup(scheduleThresholdFlagName), scheduleThresholdConfigKey)

	cmd.Flags().IntVar(&retriesFlag, retriesFlagName, viper.GetInt(retriesConfigKey), "re-dispatch attempts for failed rounds")
	bindFlagToConfig(cmd.Flags().Lookup(retriesFlagName), retriesConfigKey)

	cmd.Flags().StringVar(&metricsFileFlag, metricsFileFlagName, viper.GetString(metricsFileConfigKey), "write Prometheus metrics in text format to this file")
	bindFlagToConfig(cmd.Flags().Lookup(metricsFileFlagName), metricsFileConfigKey)
}
