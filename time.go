package zoned

import (
	"errors"
	"log/slog"
	"time"
)

// Time is an instant anchored to a resolved zone, with two free-form tags.
//
// A Time obtained from a constructor is always valid. Methods that change it
// either succeed completely or return an error and leave it untouched.
// A Time is not safe for concurrent mutation; use Clone to hand copies to
// other goroutines.
type Time struct {
	t           time.Time
	id          string
	description string
	cal         *Calendar
}

// attempt is one rung of the construction ladder.
type attempt struct {
	name  string
	build func() (time.Time, error)
}

// firstOf returns the result of the first attempt that succeeds, logging
// each one that is skipped. The last attempt must always succeed.
func (c *Calendar) firstOf(attempts []attempt) time.Time {
	for i, a := range attempts {
		t, err := a.build()
		if err == nil {
			if i > 0 {
				c.logger.Debug("zoned: construction fell back", slog.String("used", a.name), slog.Int("rung", i))
			}
			return t
		}
		c.logger.Debug("zoned: construction attempt rejected", slog.String("attempt", a.name), slog.Any("reason", err))
	}
	return c.now(c.local)
}

func (c *Calendar) wrap(t time.Time) *Time {
	return &Time{t: t, cal: c}
}

// Now returns the current time in the calendar's local zone.
func (c *Calendar) Now() *Time {
	return c.wrap(c.now(c.local))
}

// NowIn returns the current time in zone. If zone does not resolve, the
// local zone is used.
func (c *Calendar) NowIn(zone string) *Time {
	loc, err := c.ResolveZone(zone)
	if err != nil {
		c.logger.Debug("zoned: zone not resolved, using local", slog.String("zone", zone), slog.Any("reason", err))
		loc = c.local
	}
	return c.wrap(c.now(loc))
}

// Date builds a Time from explicit fields in zone. It never fails; the
// attempts are, in order:
//
//  1. zone resolves, fields valid: the given date-time in zone
//  2. zone resolves, fields invalid: the current time in zone
//  3. zone does not resolve, fields valid in the local zone: the given date-time locally
//  4. otherwise: the current local time
func (c *Calendar) Date(year, month, day, hour, minute, second, nanosecond int, zone string) *Time {
	f := newFields(year, month, day, hour, minute, second, nanosecond)
	return c.wrap(c.firstOf(c.ladder(f, zone)))
}

// FromComponents is Date with grouped components: date is (year, month, day)
// and clock is (hour, minute, second, nanosecond).
func (c *Calendar) FromComponents(date [3]int, clock [4]int, zone string) *Time {
	return c.Date(date[0], date[1], date[2], clock[0], clock[1], clock[2], clock[3], zone)
}

func (c *Calendar) ladder(f fields, zone string) []attempt {
	loc, zoneErr := c.ResolveZone(zone)
	fieldErr := f.validate()
	return []attempt{
		{"fields in zone", func() (time.Time, error) {
			if err := errors.Join(zoneErr, fieldErr); err != nil {
				return time.Time{}, err
			}
			return f.in(loc), nil
		}},
		{"now in zone", func() (time.Time, error) {
			if zoneErr != nil {
				return time.Time{}, zoneErr
			}
			return c.now(loc), nil
		}},
		{"fields in local zone", func() (time.Time, error) {
			if fieldErr != nil {
				return time.Time{}, fieldErr
			}
			return f.in(c.local), nil
		}},
		{"now in local zone", func() (time.Time, error) {
			return c.now(c.local), nil
		}},
	}
}
