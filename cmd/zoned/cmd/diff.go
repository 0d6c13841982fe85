package cmd

import (
	"fmt"

	"github.com/rabitt1ove/zoned"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <from> <to>",
	Short: "Measure the span between two timestamps",
	Long: `Prints the elapsed time from the first timestamp to the second as a
breakdown and as whole-unit totals. Timestamps are
yyyy-mm-ddThh:mm:ss@zone; without @zone the --zone value applies.

Examples:
  zoned diff 2024-03-05T10:00:00@Europe/Budapest 2024-03-06T18:00:00@Asia/Tokyo
  zoned diff -z UTC 2024-01-01T00:00 2024-12-31T23:59:59`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := parseStamp(args[0])
	if err != nil {
		return err
	}
	b, err := parseStamp(args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	d := zoned.Difference(a, b)
	fmt.Fprintf(out, "from:        %s\n", a.Info())
	fmt.Fprintf(out, "to:          %s\n", b.Info())
	fmt.Fprintf(out, "span:        %dd %dh %dm %ds %dns\n", d.Days, d.Hours, d.Minutes, d.Seconds, d.Nanoseconds)
	fmt.Fprintf(out, "days:        %d\n", zoned.DaysBetween(a, b))
	fmt.Fprintf(out, "hours:       %d\n", zoned.HoursBetween(a, b))
	fmt.Fprintf(out, "minutes:     %d\n", zoned.MinutesBetween(a, b))
	fmt.Fprintf(out, "seconds:     %d\n", zoned.SecondsBetween(a, b))
	if ns, err := zoned.NanosecondsBetween(a, b); err == nil {
		fmt.Fprintf(out, "nanoseconds: %d\n", ns)
	} else {
		fmt.Fprintln(out, "nanoseconds: out of range")
	}
	return nil
}
