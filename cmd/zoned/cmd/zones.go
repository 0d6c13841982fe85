package cmd

import (
	"fmt"
	"strings"

	"github.com/rabitt1ove/zoned"
	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones [country]",
	Short: "List region zone IDs",
	Long: `Lists the built-in zone catalogue, or the zones of one ISO 3166
country code.

Examples:
  zoned zones
  zoned zones DE`,
	Args: cobra.MaximumNArgs(1),
	RunE: runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}

func runZones(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, id := range zoned.AvailableZoneIDs() {
			fmt.Fprintln(out, id)
		}
		return nil
	}

	zones := zoned.ZonesForCountry(args[0])
	if len(zones) == 0 {
		return fmt.Errorf("no zones for country %q", args[0])
	}
	for _, z := range zones {
		line := fmt.Sprintf("%-32s %s", z.ID, strings.Join(z.Countries, ","))
		if z.Comment != "" {
			line += "  # " + z.Comment
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
