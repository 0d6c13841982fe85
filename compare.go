package zoned

import (
	"fmt"
	"strconv"
)

const secondsPerDay = 24 * 60 * 60

// Breakdown decomposes one elapsed span into days, hours, minutes, seconds
// and nanoseconds. All fields carry the sign of the span.
type Breakdown struct {
	Days        int64
	Hours       int64
	Minutes     int64
	Seconds     int64
	Nanoseconds int64
}

// IsDate reports whether year, month and day form a valid calendar date.
func IsDate(year, month, day int) bool {
	return newFields(year, month, day, 0, 0, 0, 0).validate() == nil
}

// IsDateString is IsDate for decimal strings; unparsable input is not a date.
func IsDateString(year, month, day string) bool {
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return false
	}
	return IsDate(y, m, d)
}

// IsLeapYear reports whether z falls in a leap year.
func (z *Time) IsLeapYear() bool { return IsLeap(z.Year()) }

// Equal reports whether z and other are the same instant in the same zone
// with the same offset. Tags are not compared.
func (z *Time) Equal(other *Time) bool {
	return z.t.Equal(other.t) &&
		z.ZoneID() == other.ZoneID() &&
		z.ZoneOffset() == other.ZoneOffset()
}

// EqualDays reports whether less than a whole day separates z and other.
func (z *Time) EqualDays(other *Time) bool { return DaysBetween(z, other) == 0 }

// EqualHours reports whether less than a whole hour separates z and other.
func (z *Time) EqualHours(other *Time) bool { return HoursBetween(z, other) == 0 }

// EqualSeconds reports whether less than a whole second separates z and other.
func (z *Time) EqualSeconds(other *Time) bool { return SecondsBetween(z, other) == 0 }

// DaysBetween returns the whole days from a to b, truncated toward zero.
// Positive means b is later.
func DaysBetween(a, b *Time) int64 {
	s, _ := between(a, b)
	return s / secondsPerDay
}

// HoursBetween returns the whole hours from a to b, truncated toward zero.
func HoursBetween(a, b *Time) int64 {
	s, _ := between(a, b)
	return s / 3600
}

// MinutesBetween returns the whole minutes from a to b, truncated toward zero.
func MinutesBetween(a, b *Time) int64 {
	s, _ := between(a, b)
	return s / 60
}

// SecondsBetween returns the whole seconds from a to b, truncated toward zero.
func SecondsBetween(a, b *Time) int64 {
	s, _ := between(a, b)
	return s
}

// NanosecondsBetween returns the nanoseconds from a to b. Spans longer than
// about 292 years do not fit and return an error wrapping ErrOutOfRange.
func NanosecondsBetween(a, b *Time) (int64, error) {
	s, ns := between(a, b)
	total, ok := mulInt64(s, 1e9)
	if ok {
		total, ok = addInt64(total, ns)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %d seconds in nanoseconds", ErrOutOfRange, s)
	}
	return total, nil
}

// Difference decomposes the span from a to b. The same span re-expressed
// in any pair of zones gives the same Breakdown.
func Difference(a, b *Time) Breakdown {
	s, ns := between(a, b)
	return Breakdown{
		Days:        s / secondsPerDay,
		Hours:       s % secondsPerDay / 3600,
		Minutes:     s % 3600 / 60,
		Seconds:     s % 60,
		Nanoseconds: ns,
	}
}

// between returns the span from a to b as whole seconds and a nanosecond
// remainder of the same sign. Both operands are cloned and moved to the
// zero-offset zone first.
func between(a, b *Time) (sec, nsec int64) {
	ca, cb := normalized(a), normalized(b)
	sec = cb.t.Unix() - ca.t.Unix()
	nsec = int64(cb.t.Nanosecond() - ca.t.Nanosecond())
	switch {
	case sec > 0 && nsec < 0:
		sec--
		nsec += 1e9
	case sec < 0 && nsec > 0:
		sec++
		nsec -= 1e9
	}
	return sec, nsec
}

func normalized(z *Time) *Time {
	c := z.Clone()
	// Fails only at the edge of the year range, where c keeps its own zone
	// and the same instant.
	_ = c.ChangeZone(utcZone)
	return c
}
