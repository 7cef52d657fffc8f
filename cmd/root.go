// Package cmd provides the root command and CLI setup for gauntlet.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gauntlet.dev/pkg/gauntlet/internal/adapter"
	"gauntlet.dev/pkg/gauntlet/internal/controller"
	"gauntlet.dev/pkg/gauntlet/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var programAdapter adapter.ProgramAdapter
var hostAdapter adapter.TestHostAdapter
var reportStore adapter.ReportStore
var orchestrator domain.Orchestrator
var mutagen domain.Mutagen
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

var logFileFlag string

// Subject flags shared by run and list.
var programFlag string
var tierFlag string
var seedFlag uint64

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	programAdapter = adapter.NewLocalProgramAdapter()
	hostAdapter = adapter.NewLocalTestHostAdapter()
	reportStore = adapter.NewReportStore()
	mutagen = domain.NewMutagen()
	orchestrator = domain.NewOrchestrator(programAdapter, hostAdapter, mutagen)
	workflow = domain.NewWorkflow(
		fsAdapter,
		programAdapter,
		hostAdapter,
		reportStore,
		ui,
		orchestrator,
		mutagen,
	)
}

const projectDirHelp = `The optional PROJECT argument is the directory duplicated into every
execution environment (default: current directory). The program image is
resolved relative to it.`

const rootLongDescription = `Gauntlet is a mutation testing engine for programs compiled to an
instruction-level IR image. It perturbs instructions and constants, runs
your test host against every perturbation and reports which mutations the
tests killed and which survived.

` + projectDirHelp

const runLongDescription = `Run a mutation testing session against the program image.

Coverage is collected first, candidates are packed into rounds so that no
two candidates in a round share a test, and rounds are dispatched to
isolated copies of the project.

` + projectDirHelp

const listLongDescription = `List mutation candidates per member and mutation group without running tests.

` + projectDirHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gauntlet",
		Short: "Mutation testing for IR program images",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for mutation testing reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug level entries to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().StringVar(&programFlag, programFlagName, viper.GetString(programConfigKey), "program image path, relative to the project directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(programFlagName), programConfigKey)

	cmd.PersistentFlags().StringVarP(&tierFlag, tierFlagName, "t", viper.GetString(tierConfigKey), "severity tier: simple, medium or detailed")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(tierFlagName), tierConfigKey)

	cmd.PersistentFlags().Uint64Var(&seedFlag, seedFlagName, viper.GetUint64(seedConfigKey), "seed for replacement values")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(seedFlagName), seedConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// projectDir returns the positional PROJECT argument or the working directory.
func projectDir(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "."
	}

	return args[0]
}
