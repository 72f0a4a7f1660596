package cmd

import (
	"os"

	"github.com/quakeworks/seisutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.NewEntry(logrus.StandardLogger())

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "seisutil",
	Short: "Utility commands around the toolkit",
	Long: `seisutil bundles the small helpers used around the toolkit:
UTC time string conversion with fractional seconds, fixed-width record
unpacking and regex-driven file selection.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		entry, err := seisutil.SetupLogging("seisutil", level)
		if err != nil {
			return err
		}
		log = entry
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warning", "Log level (debug, info, warning, error)")
}
