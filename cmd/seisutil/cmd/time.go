package cmd

import (
	"fmt"
	"strconv"

	"github.com/quakeworks/seisutil"
	"github.com/spf13/cobra"
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Convert between UTC time strings and epoch values",
}

// timeParseCmd represents the time parse command.
var timeParseCmd = &cobra.Command{
	Use:   "parse <string>",
	Short: "Parse a UTC time string to a floating point epoch value",
	Long: `Parse a UTC time string to a floating point epoch value.

Example:
  seisutil time parse "2009-01-01 00:00:00.5"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		t, err := seisutil.ParseTime(args[0], format)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", t)
		return nil
	},
}

// timeFormatCmd represents the time format command.
var timeFormatCmd = &cobra.Command{
	Use:   "format <epoch>",
	Short: "Format a floating point epoch value as a UTC time string",
	Long: `Format a floating point epoch value as a UTC time string.

Example:
  seisutil time format 1234567890.12345`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		layout, _ := cmd.Flags().GetString("format")
		fmt.Fprintln(cmd.OutOrStdout(), seisutil.FormatTime(t, layout))
		return nil
	},
}

func init() {
	timeParseCmd.Flags().String("format", seisutil.DefaultParseFormat,
		"Time format, may end in .FRAC or .OPTFRAC")
	timeFormatCmd.Flags().String("format", seisutil.DefaultTimeFormat,
		"Go time layout, may contain one %.Nf fraction directive")
	timeCmd.AddCommand(timeParseCmd, timeFormatCmd)
	rootCmd.AddCommand(timeCmd)
}
