package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rabitt1ove/zoned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args. Flag variables are package
// state, so tests in this package do not run in parallel.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cfgFile, verbose, zoneFlag = "", false, ""
	nowID, nowDesc, nowAutoID = "", "", false
	convertFrom, convertTo = "", ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zoned.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const isoConfig = `
local_zone = "UTC"

[week]
first_day = "monday"
min_days = 4
`

func TestConvert(t *testing.T) {
	out, _, err := execute(t, "convert", "2024-03-05", "10:15:30", "--from", "Europe/Budapest", "--to", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t,
		"2024-03-05T10:15:30+01:00[Europe/Budapest]\n2024-03-05T18:15:30+09:00[Asia/Tokyo]\n",
		out)
}

func TestConvert_FromDefaultsToZoneFlag(t *testing.T) {
	out, _, err := execute(t, "-z", "UTC", "convert", "2024-07-01", "09:00", "--to", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t,
		"2024-07-01T09:00:00Z[UTC]\n2024-07-01T05:00:00-04:00[America/New_York]\n",
		out)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing --to", []string{"convert", "2024-03-05", "10:00:00", "--from", "UTC"}, "--to is required"},
		{"invalid date", []string{"convert", "2023-02-29", "10:00:00", "--to", "UTC"}, "invalid date"},
		{"invalid time", []string{"convert", "2024-03-05", "24:00:00", "--to", "UTC"}, "invalid time"},
		{"unknown source zone", []string{"convert", "2024-03-05", "10:00:00", "--from", "Mars/Olympus", "--to", "UTC"}, "--from"},
		{"unknown target zone", []string{"convert", "2024-03-05", "10:00:00", "--from", "UTC", "--to", "Mars/Olympus"}, "--to"},
		{"missing arguments", []string{"convert", "2024-03-05"}, "accepts 2 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, _, err := execute(t, "convert", "2024-03-05", "10:00:00", "--from", "Mars/Olympus", "--to", "UTC")
	assert.ErrorIs(t, err, zoned.ErrUnknownZone)
}

func TestDiff(t *testing.T) {
	out, _, err := execute(t, "diff", "2024-03-05T10:00:00@Europe/Budapest", "2024-03-06T18:30:15@Asia/Tokyo")
	require.NoError(t, err)
	assert.Contains(t, out, "span:        1d 0h 30m 15s 0ns\n")
	assert.Contains(t, out, "days:        1\n")
	assert.Contains(t, out, "hours:       24\n")
	assert.Contains(t, out, "minutes:     1470\n")
	assert.Contains(t, out, "seconds:     88215\n")
	assert.Contains(t, out, "nanoseconds: 88215000000000\n")
}

func TestDiff_Negative(t *testing.T) {
	out, _, err := execute(t, "-z", "UTC", "diff", "2024-01-02T00:00", "2024-01-01T12:00")
	require.NoError(t, err)
	assert.Contains(t, out, "span:        0d -12h 0m 0s 0ns\n")
	assert.Contains(t, out, "hours:       -12\n")
}

func TestDiff_OutOfRangeNanoseconds(t *testing.T) {
	out, _, err := execute(t, "diff", "1700-01-01T00:00:00@UTC", "2024-01-01T00:00:00@UTC")
	require.NoError(t, err)
	assert.Contains(t, out, "nanoseconds: out of range\n")
}

func TestDiff_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"diff", "2024-03-05", "2024-03-06T00:00:00@UTC"},
		{"diff", "2024-03-05T00:00:00@Nowhere/City", "2024-03-06T00:00:00@UTC"},
		{"diff", "2024-03-05T00:00:00@UTC", "2024-13-06T00:00:00@UTC"},
	} {
		_, _, err := execute(t, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestInfo(t *testing.T) {
	cfg := writeConfig(t, isoConfig)

	out, _, err := execute(t, "--config", cfg, "info", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, `date:        2024 December 31
weekday:     Tuesday (2)
year day:    366
week:        1
leap year:   true
days/year:   366
weeks/year:  52
year starts: Monday
year ends:   Tuesday
`, out)
}

func TestInfo_VerboseLogsLocalFallback(t *testing.T) {
	cfg := writeConfig(t, isoConfig)

	_, stderr, err := execute(t, "--config", cfg, "--verbose", "info", "2020-12-31")
	require.NoError(t, err)
	assert.Contains(t, stderr, "config loaded")
	assert.Contains(t, stderr, "fields in local zone")
}

func TestNow(t *testing.T) {
	out, _, err := execute(t, "now", "UTC", "--id", "deploy", "--desc", "release window")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "deploy, release window, "), out)
	assert.True(t, strings.HasSuffix(out, "[UTC]\n"), out)
}

func TestNow_AutoID(t *testing.T) {
	out, _, err := execute(t, "-z", "Asia/Tokyo", "now", "--auto-id")
	require.NoError(t, err)

	id, rest, ok := strings.Cut(out, ", ")
	require.True(t, ok, out)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(rest, "+09:00[Asia/Tokyo]\n"), rest)
}

func TestNow_UnknownZone(t *testing.T) {
	_, _, err := execute(t, "now", "Mars/Olympus")
	assert.ErrorIs(t, err, zoned.ErrUnknownZone)
}

func TestZones(t *testing.T) {
	out, _, err := execute(t, "zones")
	require.NoError(t, err)
	assert.Contains(t, out, "Europe/Budapest\n")

	out, _, err = execute(t, "zones", "hu")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Budapest                  HU\n", out)

	out, _, err = execute(t, "zones", "CH")
	require.NoError(t, err)
	assert.Contains(t, out, "# Büsingen")

	_, _, err = execute(t, "zones", "ZZ")
	assert.Error(t, err)
}

func TestConfigErrors(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "zones")
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg := writeConfig(t, `local_zone = "Mars/Olympus"`)
	_, _, err = execute(t, "--config", cfg, "zones")
	assert.ErrorIs(t, err, zoned.ErrUnknownZone)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "zoned v"+Version)
}
