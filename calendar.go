// Package zoned provides a timezone-aware calendar value type.
//
// A [Time] is always a fully resolved instant in a concrete zone. It is
// built by construction functions that never fail (invalid zones or fields
// fall back to the local zone or the current time), and edited by methods
// that either apply completely or return an error and leave the value as it
// was.
//
// Zone specifiers accept fixed offsets (GMT+01:30, UTC-5, +05:30, Z),
// region IDs (Europe/Budapest) and the abbreviations known to the zone
// database (CET, EST):
//
//	t := zoned.Date(2024, 3, 5, 10, 15, 30, 0, "Europe/Budapest")
//	t.AddMonths(1)
//	t.FormatDate(3, 2, 1, false, true, '.') // "05.04.2024"
//
// Package-level functions use a default [Calendar] backed by the system
// clock, the process local zone and the week convention of the process
// locale. Create one with [NewCalendar] for an isolated configuration:
//
//	cal := zoned.NewCalendar(zoned.WithWeekConvention(zoned.ISOWeek))
//	t := cal.NowIn("UTC")
package zoned

import (
	"log/slog"
	"sync"
	"time"
)

// Calendar holds the context a Time is built in: clock, local zone, week
// convention, zone aliases and a cache of resolved zones.
// Create one with [NewCalendar]. All methods are safe for concurrent use.
type Calendar struct {
	clock   Clock
	local   *time.Location
	week    WeekConvention
	aliases map[string]string
	logger  *slog.Logger

	mu    sync.RWMutex
	zones map[string]*time.Location
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithClock sets the source of the current instant.
func WithClock(c Clock) Option {
	return func(cal *Calendar) { cal.clock = c }
}

// WithLocalZone sets the zone used for "now" and for construction fallbacks.
func WithLocalZone(loc *time.Location) Option {
	return func(cal *Calendar) {
		if loc != nil {
			cal.local = loc
		}
	}
}

// WithWeekConvention sets the week-numbering rule used by Week and WeeksInYear.
func WithWeekConvention(w WeekConvention) Option {
	return func(cal *Calendar) { cal.week = w }
}

// WithZoneAliases registers alias specifiers (e.g. "PST" -> "America/Los_Angeles")
// consulted before structural resolution. Ambiguous abbreviations are the
// caller's to map.
func WithZoneAliases(aliases map[string]string) Option {
	return func(cal *Calendar) {
		for k, v := range aliases {
			cal.aliases[k] = v
		}
	}
}

// WithLogger sets the logger that records construction fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(cal *Calendar) {
		if l != nil {
			cal.logger = l
		}
	}
}

// NewCalendar creates a Calendar. Without options it uses the system clock,
// time.Local and the week convention of the process locale.
func NewCalendar(opts ...Option) *Calendar {
	cal := &Calendar{
		clock:   SystemClock(),
		local:   time.Local,
		week:    DefaultWeekConvention(),
		aliases: make(map[string]string),
		logger:  slog.New(slog.DiscardHandler),
		zones:   make(map[string]*time.Location),
	}
	for _, opt := range opts {
		opt(cal)
	}
	return cal
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = NewCalendar()

// ResolveZone maps a zone specifier to a location. Aliases are looked up
// first; the result is cached. It returns an error wrapping ErrUnknownZone
// if the specifier is not recognized.
func (c *Calendar) ResolveZone(spec string) (*time.Location, error) {
	c.mu.RLock()
	loc, ok := c.zones[spec]
	c.mu.RUnlock()
	if ok {
		return loc, nil
	}

	target := spec
	if alias, ok := c.aliases[spec]; ok {
		target = alias
	}
	loc, err := resolveStructural(target)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.zones[spec] = loc
	c.mu.Unlock()
	return loc, nil
}

// Local returns the calendar's local zone.
func (c *Calendar) Local() *time.Location { return c.local }

// Week returns the calendar's week convention.
func (c *Calendar) Week() WeekConvention { return c.week }

func (c *Calendar) now(loc *time.Location) time.Time {
	return c.clock.Now().In(loc)
}

// --- Package-level convenience functions ---

// ResolveZone maps a zone specifier to a location using the default calendar.
func ResolveZone(spec string) (*time.Location, error) { return defaultCal.ResolveZone(spec) }

// Now returns the current time in the local zone.
func Now() *Time { return defaultCal.Now() }

// NowIn returns the current time in zone, or in the local zone if zone does not resolve.
func NowIn(zone string) *Time { return defaultCal.NowIn(zone) }

// Date builds a Time from fields in zone, falling back as described on [Calendar.Date].
func Date(year, month, day, hour, minute, second, nanosecond int, zone string) *Time {
	return defaultCal.Date(year, month, day, hour, minute, second, nanosecond, zone)
}

// FromComponents builds a Time from (year, month, day) and
// (hour, minute, second, nanosecond), falling back like [Date].
func FromComponents(date [3]int, clock [4]int, zone string) *Time {
	return defaultCal.FromComponents(date, clock, zone)
}
