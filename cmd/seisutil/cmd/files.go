package cmd

import (
	"fmt"

	"github.com/quakeworks/seisutil"
	"github.com/spf13/cobra"
)

// filesCmd represents the files command.
var filesCmd = &cobra.Command{
	Use:   "files <path>...",
	Short: "Recursively select files matching a pattern",
	Long: `Recursively select files under the given entry paths and print
their absolute path names.

Example:
  seisutil files --regex '\.(mseed|msd)$' /data/archive`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, _ := cmd.Flags().GetString("regex")
		quiet, _ := cmd.Flags().GetBool("quiet")

		progress := seisutil.NewProgress(cmd.ErrOrStderr())
		progress.Enabled = !quiet

		sw := seisutil.NewStopwatch()
		progress.Begin("selecting files...")
		found, err := seisutil.SelectFiles(args, pattern, nil)
		if err != nil {
			return err
		}
		progress.End(fmt.Sprintf("%d file%s selected.", len(found), seisutil.PluralS(len(found))))
		log.Debugf("file selection took %s", sw.Elapsed())

		for _, p := range found {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	filesCmd.Flags().String("regex", "", "Only include files whose path matches this pattern")
	filesCmd.Flags().Bool("quiet", false, "Suppress progress output")
	rootCmd.AddCommand(filesCmd)
}
