package cmd

import (
	"log/slog"

	"github.com/rabitt1ove/zoned"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	verbose  bool
	zoneFlag string
)

// cal is built from the flags before any subcommand runs.
var cal *zoned.Calendar

var rootCmd = &cobra.Command{
	Use:   "zoned",
	Short: "Zoned date-time toolbox",
	Long: `zoned builds, converts and compares date-times in IANA regions and
fixed-offset zones.

Zone specifiers:
  Europe/Budapest          region ID
  GMT+01:30, UTC-5, UT+2   prefixed offset
  +05:30, -0800, Z         bare offset
  CET, EST                 zone database abbreviations

An empty zone means the local zone.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log construction fallbacks")
	rootCmd.PersistentFlags().StringVarP(&zoneFlag, "zone", "z", "", "default zone specifier")
}

func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if cfgFile == "" {
		cal = zoned.NewCalendar(zoned.WithLogger(logger))
		return nil
	}
	c, err := zoned.NewCalendarFromConfig(cfgFile, zoned.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("config loaded", slog.String("path", cfgFile), slog.String("local", c.Local().String()))
	cal = c
	return nil
}

// zoneOr returns spec, or the --zone value when spec is empty.
func zoneOr(spec string) string {
	if spec != "" {
		return spec
	}
	return zoneFlag
}

// checkZone rejects a non-empty specifier that does not resolve, so the
// command fails instead of silently using the local zone.
func checkZone(spec string) error {
	if spec == "" {
		return nil
	}
	if _, err := cal.ResolveZone(spec); err != nil {
		return err
	}
	return nil
}
