package zoned

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// infoLayout is the canonical rendering used by Info; the zone ID follows in brackets.
const infoLayout = "2006-01-02T15:04:05.999999999Z07:00"

// MonthName returns the English name of month 1-12, or "" for any other value.
func MonthName(month int) string {
	if month < 1 || month > len(monthNames) {
		return ""
	}
	return monthNames[month-1]
}

// WeekdayName returns the English name of weekday 1-7 (Monday = 1), or "".
func WeekdayName(weekday int) string {
	if weekday < 1 || weekday > len(weekdayNames) {
		return ""
	}
	return weekdayNames[weekday-1]
}

// ID returns the identifier tag.
func (z *Time) ID() string { return z.id }

// Description returns the description tag.
func (z *Time) Description() string { return z.description }

// Std returns the underlying time.Time.
func (z *Time) Std() time.Time { return z.t }

func (z *Time) Year() int       { return z.t.Year() }
func (z *Time) Month() int      { return int(z.t.Month()) }
func (z *Time) Day() int        { return z.t.Day() }
func (z *Time) Hour() int       { return z.t.Hour() }
func (z *Time) Minute() int     { return z.t.Minute() }
func (z *Time) Second() int     { return z.t.Second() }
func (z *Time) Nanosecond() int { return z.t.Nanosecond() }

// Date returns year, month and day.
func (z *Time) Date() [3]int {
	return [3]int{z.Year(), z.Month(), z.Day()}
}

// Clock returns hour, minute, second and nanosecond.
func (z *Time) Clock() [4]int {
	return [4]int{z.Hour(), z.Minute(), z.Second(), z.Nanosecond()}
}

// ZoneID returns the zone identifier. For zones obtained from a specifier it
// resolves back to the same zone. The process zone reports "Local".
func (z *Time) ZoneID() string {
	return z.t.Location().String()
}

// ZoneOffset returns the offset in effect at the instant: "Z" or ±hh:mm.
func (z *Time) ZoneOffset() string {
	_, off := z.t.Zone()
	return offsetID(off)
}

// ZoneOffsetHours returns the offset in effect as signed fractional hours
// (+05:30 is 5.5).
func (z *Time) ZoneOffsetHours() float64 {
	_, off := z.t.Zone()
	return float64(off) / 3600
}

// FormatDate lays out year, month and day at the given positions (a
// permutation of 1, 2, 3) joined by sep. With monthName the month is
// spelled out and sep is replaced by a space. With pad the year is padded
// to four digits and month and day to two. Invalid positions yield "".
func (z *Time) FormatDate(posYear, posMonth, posDay int, monthName, pad bool, sep rune) string {
	if !isPermutation(posYear, posMonth, posDay) {
		return ""
	}
	var parts [3]string
	parts[posYear-1] = number(z.Year(), pad, 4)
	if monthName {
		parts[posMonth-1] = MonthName(z.Month())
		sep = ' '
	} else {
		parts[posMonth-1] = number(z.Month(), pad, 2)
	}
	parts[posDay-1] = number(z.Day(), pad, 2)
	return strings.Join(parts[:], string(sep))
}

// FormatClock lays out hour, minute and second at the given positions (a
// permutation of 1, 2, 3) joined by sep. Invalid positions yield "".
func (z *Time) FormatClock(posHour, posMinute, posSecond int, pad bool, sep rune) string {
	if !isPermutation(posHour, posMinute, posSecond) {
		return ""
	}
	var parts [3]string
	parts[posHour-1] = number(z.Hour(), pad, 2)
	parts[posMinute-1] = number(z.Minute(), pad, 2)
	parts[posSecond-1] = number(z.Second(), pad, 2)
	return strings.Join(parts[:], string(sep))
}

func isPermutation(a, b, c int) bool {
	in := func(p int) bool { return p >= 1 && p <= 3 }
	return in(a) && in(b) && in(c) && a != b && a != c && b != c
}

func number(n int, pad bool, width int) string {
	if pad {
		return fmt.Sprintf("%0*d", width, n)
	}
	return strconv.Itoa(n)
}

// Info renders the instant as 2006-01-02T15:04:05.999999999Z07:00[ZoneID].
// The bracketed zone is omitted when the zone is a bare offset.
func (z *Time) Info() string {
	s := z.t.Format(infoLayout)
	if id := z.ZoneID(); id != z.ZoneOffset() {
		s += "[" + id + "]"
	}
	return s
}

// String implements fmt.Stringer; it is Info.
func (z *Time) String() string { return z.Info() }

// FullInfo is Info prefixed by the non-empty identifier and description,
// comma separated.
func (z *Time) FullInfo() string {
	var b strings.Builder
	for _, tag := range []string{z.id, z.description} {
		if tag != "" {
			b.WriteString(tag)
			b.WriteString(", ")
		}
	}
	b.WriteString(z.Info())
	return b.String()
}
