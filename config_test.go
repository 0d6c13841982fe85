package zoned

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_TOML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "zoned.toml", `
local_zone = "Europe/Budapest"
locale = "en-US"

[week]
min_days = 4

[aliases]
PST = "America/Los_Angeles"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Budapest", cfg.LocalZone)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, 4, cfg.Week.MinDays)
	assert.Equal(t, map[string]string{"PST": "America/Los_Angeles"}, cfg.Aliases)

	cal, err := NewCalendarFromConfig(path, WithClock(FixedClock(testNow)))
	require.NoError(t, err)
	assert.Equal(t, "Europe/Budapest", cal.Local().String())
	assert.Equal(t, WeekConvention{FirstDay: time.Sunday, MinDays: 4}, cal.Week())

	loc, err := cal.ResolveZone("PST")
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", loc.String())

	now := cal.Now()
	assert.True(t, now.Std().Equal(testNow))
	assert.Equal(t, "Europe/Budapest", now.ZoneID())
}

func TestLoadConfig_YAML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "zoned.yml", `
local_zone: PST
week:
  first_day: sunday
aliases:
  PST: America/Los_Angeles
`)

	cal, err := NewCalendarFromConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", cal.Local().String())
	assert.Equal(t, USWeek, cal.Week())
}

func TestConfigOptions_Empty(t *testing.T) {
	t.Parallel()

	opts, err := Config{}.Options()
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestConfigOptions_LocaleOnly(t *testing.T) {
	t.Parallel()

	opts, err := Config{Locale: "de-DE"}.Options()
	require.NoError(t, err)
	cal := NewCalendar(opts...)
	assert.Equal(t, ISOWeek, cal.Week())
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"unsupported format", "zoned.json", `{}`, "unsupported format"},
		{"malformed toml", "zoned.toml", `local_zone = `, "decode"},
		{"malformed yaml", "zoned.yaml", "week: [", "decode"},
		{"unknown local zone", "zoned.toml", `local_zone = "Mars/Olympus"`, "local_zone"},
		{"bad locale", "zoned.toml", `locale = "!!"`, "locale"},
		{"bad first day", "zoned.toml", "[week]\nfirst_day = \"someday\"", "week.first_day"},
		{"bad min days", "zoned.yaml", "week:\n  min_days: 9\n", "week.min_days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			_, err := NewCalendarFromConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown zone is wrapped", func(t *testing.T) {
		path := writeConfig(t, "zoned.toml", `local_zone = "Mars/Olympus"`)
		_, err := NewCalendarFromConfig(path)
		assert.ErrorIs(t, err, ErrUnknownZone)
	})
}
