package zoned

import (
	"fmt"
	"time"
)

// Clone returns an independent copy with identical fields and tags.
func (z *Time) Clone() *Time {
	c := *z
	return &c
}

// SetID sets the identifier tag.
func (z *Time) SetID(id string) { z.id = id }

// SetDescription sets the description tag.
func (z *Time) SetDescription(description string) { z.description = description }

// SetNow moves z to the current time in the local zone.
func (z *Time) SetNow() {
	z.t = z.cal.now(z.cal.local)
}

// SetNowIn moves z to the current time in zone. If zone does not resolve,
// z is unchanged and the error wraps ErrUnknownZone.
func (z *Time) SetNowIn(zone string) error {
	loc, err := z.cal.ResolveZone(zone)
	if err != nil {
		return err
	}
	z.t = z.cal.now(loc)
	return nil
}

// SetDateTime replaces date, time and zone at once. Unlike construction
// there is no fallback: a bad zone or field combination leaves z unchanged.
func (z *Time) SetDateTime(year, month, day, hour, minute, second, nanosecond int, zone string) error {
	loc, err := z.cal.ResolveZone(zone)
	if err != nil {
		return err
	}
	return z.apply(newFields(year, month, day, hour, minute, second, nanosecond), loc)
}

// SetComponents is SetDateTime with grouped components: date is
// (year, month, day) and clock is (hour, minute, second, nanosecond).
func (z *Time) SetComponents(date [3]int, clock [4]int, zone string) error {
	return z.SetDateTime(date[0], date[1], date[2], clock[0], clock[1], clock[2], clock[3], zone)
}

// SetYear substitutes the year. Setting a non-leap year on February 29 fails.
func (z *Time) SetYear(year int) error {
	return z.with(func(f *fields) { f.year = year })
}

// SetMonth substitutes the month (1-12). The day must exist in the new month.
func (z *Time) SetMonth(month int) error {
	return z.with(func(f *fields) { f.month = time.Month(month) })
}

// SetDay substitutes the day of month.
func (z *Time) SetDay(day int) error {
	return z.with(func(f *fields) { f.day = day })
}

// SetHour substitutes the hour (0-23).
func (z *Time) SetHour(hour int) error {
	return z.with(func(f *fields) { f.hour = hour })
}

// SetMinute substitutes the minute (0-59).
func (z *Time) SetMinute(minute int) error {
	return z.with(func(f *fields) { f.minute = minute })
}

// SetSecond substitutes the second (0-59).
func (z *Time) SetSecond(second int) error {
	return z.with(func(f *fields) { f.second = second })
}

// SetNanosecond substitutes the nanosecond (0-999999999).
func (z *Time) SetNanosecond(nanosecond int) error {
	return z.with(func(f *fields) { f.nanosecond = nanosecond })
}

// SetYearDay moves z to the given day of its year, keeping the time of day.
func (z *Time) SetYearDay(yearDay int) error {
	f := fieldsOf(z.t)
	d, ok := fromYearDay(f.year, yearDay)
	if !ok {
		return fmt.Errorf("%w: day of year %d in %d", ErrInvalidDateTime, yearDay, f.year)
	}
	f.date = d
	return z.apply(f, z.t.Location())
}

// with applies one field substitution in the current zone.
func (z *Time) with(edit func(*fields)) error {
	f := fieldsOf(z.t)
	edit(&f)
	return z.apply(f, z.t.Location())
}

// apply validates f and only then replaces the instant.
func (z *Time) apply(f fields, loc *time.Location) error {
	if err := f.validate(); err != nil {
		return err
	}
	z.t = f.in(loc)
	return nil
}
