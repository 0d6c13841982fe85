package cmd

import (
	"fmt"

	"github.com/rabitt1ove/zoned"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <yyyy-mm-dd>",
	Short: "Show calendar facts about a date",
	Long: `Prints the weekday, year day and week number of a date, and the length
of its year. Week numbers follow the configured week convention (the
process locale unless the config file sets one).

Example:
  zoned info 2024-12-31`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	d, err := parseDate(args[0])
	if err != nil {
		return err
	}
	t, err := build(d, [3]int{12, 0, 0}, zoneOr(""))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "date:        %s\n", t.FormatDate(1, 2, 3, true, true, ' '))
	fmt.Fprintf(out, "weekday:     %s (%d)\n", zoned.WeekdayName(t.Weekday()), t.Weekday())
	fmt.Fprintf(out, "year day:    %d\n", t.YearDay())
	fmt.Fprintf(out, "week:        %d\n", t.Week())
	fmt.Fprintf(out, "leap year:   %t\n", t.IsLeapYear())
	fmt.Fprintf(out, "days/year:   %d\n", t.DaysInYear())
	fmt.Fprintf(out, "weeks/year:  %d\n", t.WeeksInYear())
	fmt.Fprintf(out, "year starts: %s\n", zoned.WeekdayName(t.FirstWeekdayOfYear()))
	fmt.Fprintf(out, "year ends:   %s\n", zoned.WeekdayName(t.LastWeekdayOfYear()))
	return nil
}
