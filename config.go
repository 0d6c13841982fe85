package zoned

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config is the file form of Calendar options.
//
//	local_zone = "Europe/Budapest"
//	locale     = "hu-HU"
//
//	[week]
//	first_day = "monday"
//	min_days  = 4
//
//	[aliases]
//	PST = "America/Los_Angeles"
type Config struct {
	LocalZone string            `toml:"local_zone" yaml:"local_zone"`
	Locale    string            `toml:"locale" yaml:"locale"`
	Week      WeekConfig        `toml:"week" yaml:"week"`
	Aliases   map[string]string `toml:"aliases" yaml:"aliases"`
}

// WeekConfig overrides the week convention. It takes precedence over Locale.
type WeekConfig struct {
	FirstDay string `toml:"first_day" yaml:"first_day"`
	MinDays  int    `toml:"min_days" yaml:"min_days"`
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	return cfg, nil
}

// Options converts the config to Calendar options. Zone and locale values
// are validated here so that a bad file fails loudly instead of falling back.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	if len(c.Aliases) > 0 {
		opts = append(opts, WithZoneAliases(c.Aliases))
	}

	if c.LocalZone != "" {
		loc, err := NewCalendar(WithZoneAliases(c.Aliases)).ResolveZone(c.LocalZone)
		if err != nil {
			return nil, fmt.Errorf("local_zone: %w", err)
		}
		opts = append(opts, WithLocalZone(loc))
	}

	week, set, err := c.weekConvention()
	if err != nil {
		return nil, err
	}
	if set {
		opts = append(opts, WithWeekConvention(week))
	}
	return opts, nil
}

func (c Config) weekConvention() (WeekConvention, bool, error) {
	w := WorldWeek
	set := false
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return w, false, fmt.Errorf("locale %q: %w", c.Locale, err)
		}
		w, set = WeekConventionFor(tag), true
	}
	if c.Week.FirstDay != "" {
		d, ok := ParseWeekday(c.Week.FirstDay)
		if !ok {
			return w, false, fmt.Errorf("week.first_day: unknown weekday %q", c.Week.FirstDay)
		}
		w.FirstDay, set = d, true
	}
	if c.Week.MinDays != 0 {
		if c.Week.MinDays < 1 || c.Week.MinDays > 7 {
			return w, false, fmt.Errorf("week.min_days: %d not in [1, 7]", c.Week.MinDays)
		}
		w.MinDays, set = c.Week.MinDays, true
	}
	return w, set, nil
}

// NewCalendarFromConfig builds a Calendar from a config file; extra options
// are applied after the file's.
func NewCalendarFromConfig(path string, extra ...Option) (*Calendar, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return NewCalendar(append(opts, extra...)...), nil
}
