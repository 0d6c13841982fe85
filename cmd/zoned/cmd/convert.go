package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <yyyy-mm-dd> <hh:mm:ss>",
	Short: "Re-express a wall-clock time in another zone",
	Long: `Reads a date and time in the --from zone and prints the same instant
in the --to zone. --from defaults to --zone, then to the local zone.

Examples:
  zoned convert 2024-03-05 10:15:30 --from Europe/Budapest --to Asia/Tokyo
  zoned convert 2024-07-01 09:00 --from America/New_York --to UTC`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source zone")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target zone (required)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertTo == "" {
		return errors.New("--to is required")
	}
	d, err := parseDate(args[0])
	if err != nil {
		return err
	}
	c, err := parseClock(args[1])
	if err != nil {
		return err
	}
	t, err := build(d, c, zoneOr(convertFrom))
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Info())
	if err := t.ChangeZone(convertTo); err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	fmt.Fprintln(out, t.Info())
	return nil
}
