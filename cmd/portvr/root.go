package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portvr/painel/pkg/config"
)

// skipSetup marks commands that run without loading configuration.
const skipSetup = "skip-setup"

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "portvr",
		Short: "Port VR - training dashboard data export",
		Long: `Portvr exports the data of the Port VR training dashboard as CSV, JSON
or styled XLSX spreadsheets and keeps the dashboard's local session
(profile and theme).

Datasets:
  workers      - registered workers and their current training
  trainings    - trainings in progress
  performance  - monthly accuracy, completion time and safety scores
  history      - completed trainings`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] != "" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", config.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "result format: text, json")

	rootCmd.AddCommand(
		newExportCmd(a),
		newDatasetsCmd(a),
		newProfileCmd(a),
		newThemeCmd(a),
		newLogoutCmd(a),
		newScheduleCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return rootCmd
}
