package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	nowID     string
	nowDesc   string
	nowAutoID bool
)

var nowCmd = &cobra.Command{
	Use:   "now [zone]",
	Short: "Print the current time",
	Long: `Prints the current instant in a zone, optionally tagged.

Examples:
  zoned now
  zoned now Asia/Tokyo
  zoned now UTC --id deploy --desc "release window"
  zoned now --auto-id`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)

	nowCmd.Flags().StringVar(&nowID, "id", "", "identifier tag")
	nowCmd.Flags().StringVar(&nowDesc, "desc", "", "description tag")
	nowCmd.Flags().BoolVar(&nowAutoID, "auto-id", false, "tag with a random UUID (overrides --id)")
}

func runNow(cmd *cobra.Command, args []string) error {
	var spec string
	if len(args) > 0 {
		spec = args[0]
	}
	spec = zoneOr(spec)
	if err := checkZone(spec); err != nil {
		return err
	}

	t := cal.Now()
	if spec != "" {
		t = cal.NowIn(spec)
	}

	id := nowID
	if nowAutoID {
		id = uuid.NewString()
	}
	t.SetID(id)
	t.SetDescription(nowDesc)

	fmt.Fprintln(cmd.OutOrStdout(), t.FullInfo())
	return nil
}
