package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/quakeworks/seisutil"
	"github.com/spf13/cobra"
)

// unpackCmd represents the unpack command.
var unpackCmd = &cobra.Command{
	Use:   "unpack <format>",
	Short: "Unpack fixed-width lines from stdin",
	Long: `Unpack reads lines from stdin and decodes each one according to a
comma-separated field format. Values are printed tab-separated; blank
optional fields print as "-".

Example:
  seisutil unpack 'a5,i4,f8,x2,A4?' < picks.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			values, err := seisutil.Unpack(args[0], scanner.Text())
			if err != nil {
				return err
			}
			out := make([]string, len(values))
			for i, v := range values {
				if v == nil {
					out[i] = "-"
				} else {
					out[i] = fmt.Sprint(v)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\t"))
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)
}
