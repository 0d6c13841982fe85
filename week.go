package zoned

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// WeekConvention defines how weeks of a year are numbered: the day a week
// starts on, and how many days of that week must fall in the new year for
// it to count as week 1.
type WeekConvention struct {
	FirstDay time.Weekday
	MinDays  int
}

var (
	// ISOWeek is ISO-8601: weeks start on Monday, week 1 holds the first Thursday.
	ISOWeek = WeekConvention{FirstDay: time.Monday, MinDays: 4}
	// USWeek starts on Sunday; week 1 holds January 1.
	USWeek = WeekConvention{FirstDay: time.Sunday, MinDays: 1}
	// WorldWeek is the convention for locales without a region: Monday, minimum one day.
	WorldWeek = WeekConvention{FirstDay: time.Monday, MinDays: 1}
)

// Regions whose week does not start on Monday, and regions that require
// four days in the first week. From CLDR weekData.
var (
	sundayStart = regionSet("AG AS BD BR BS BT BW BZ CA CN CO DM DO ET GT GU HK HN ID IL IN JM JP KE KH KR LA MH MM MO MT MX MZ NI NP PA PE PH PK PR PT PY SA SG SV TH TT TW UM US VE VI WS YE ZA ZW")
	saturdayStart = regionSet("AE AF BH DJ DZ EG IQ IR JO KW LY OM QA SD SY")
	fridayStart   = regionSet("MV")
	fourDayFirst  = regionSet("AD AN AT AX BE BG CH CZ DE DK EE ES FI FJ FO FR GB GF GG GI GP GR HU IE IM IS IT JE LI LT LU MC MQ NL NO PL PT RE RU SE SJ SK SM VA")
)

func regionSet(list string) map[string]bool {
	m := make(map[string]bool)
	for _, r := range strings.Fields(list) {
		m[r] = true
	}
	return m
}

// WeekConventionFor returns the convention of the tag's region. A tag
// without an explicit region (e.g. "en") gets WorldWeek.
func WeekConventionFor(tag language.Tag) WeekConvention {
	region, conf := tag.Region()
	if conf != language.Exact {
		return WorldWeek
	}
	r := region.String()
	w := WeekConvention{FirstDay: time.Monday, MinDays: 1}
	switch {
	case sundayStart[r]:
		w.FirstDay = time.Sunday
	case saturdayStart[r]:
		w.FirstDay = time.Saturday
	case fridayStart[r]:
		w.FirstDay = time.Friday
	}
	if fourDayFirst[r] {
		w.MinDays = 4
	}
	return w
}

// DefaultWeekConvention derives the convention from the process locale
// (LC_ALL, LC_TIME, then LANG). An unset or unparsable locale gives WorldWeek.
func DefaultWeekConvention() WeekConvention {
	tag, ok := processLocale()
	if !ok {
		return WorldWeek
	}
	return WeekConventionFor(tag)
}

func processLocale() (language.Tag, bool) {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		return parsePOSIXLocale(v)
	}
	return language.Und, false
}

// parsePOSIXLocale converts values like "en_US.UTF-8" or "de_DE@euro" to a
// BCP 47 tag. "C" and "POSIX" have no region.
func parsePOSIXLocale(v string) (language.Tag, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// ParseWeekday accepts an English weekday name, case-insensitive.
func ParseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, true
		}
	}
	return 0, false
}

// isoWeekday maps time.Weekday to 1 (Monday) through 7 (Sunday).
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// localizedWeekday is the 1-based position of d in a week starting on w.FirstDay.
func (w WeekConvention) localizedWeekday(d time.Weekday) int {
	return int((d-w.FirstDay+7)%7) + 1
}

// startOfWeekOffset returns the day-of-year offset of the first week that
// counts as week 1, given a day of year and its localized weekday.
func (w WeekConvention) startOfWeekOffset(day, dow int) int {
	weekStart := ((day-dow)%7 + 7) % 7
	offset := -weekStart
	if weekStart+1 > w.MinDays {
		offset = 7 - weekStart
	}
	return offset
}

func computeWeek(offset, day int) int {
	return (7 + offset + (day - 1)) / 7
}

// weekOfWeekBasedYear numbers the week containing t. Days before week 1
// belong to the last week of the previous year; days after the last full
// week may belong to week 1 of the next year.
func (w WeekConvention) weekOfWeekBasedYear(t time.Time) int {
	dow := w.localizedWeekday(t.Weekday())
	doy := t.YearDay()
	offset := w.startOfWeekOffset(doy, dow)
	week := computeWeek(offset, doy)
	if week == 0 {
		return w.weekOfWeekBasedYear(t.AddDate(0, 0, -doy))
	}
	if week > 50 {
		yearLen := daysInYear(t.Year())
		newYearWeek := computeWeek(offset, yearLen+w.MinDays)
		if week >= newYearWeek {
			week = week - newYearWeek + 1
		}
	}
	return week
}

// Weekday returns the day of week, 1 (Monday) through 7 (Sunday).
func (z *Time) Weekday() int { return isoWeekday(z.t.Weekday()) }

// YearDay returns the day of the year, 1 through 365 or 366.
func (z *Time) YearDay() int { return z.t.YearDay() }

// Week returns the week of the week-based year under the calendar's
// week convention.
func (z *Time) Week() int { return z.cal.week.weekOfWeekBasedYear(z.t) }

// FirstWeekdayOfYear returns the day of week (1-7) of January 1 of z's year in z's zone.
func (z *Time) FirstWeekdayOfYear() int {
	return isoWeekday(z.yearBoundary(time.January, 1).Weekday())
}

// LastWeekdayOfYear returns the day of week (1-7) of December 31 of z's year in z's zone.
func (z *Time) LastWeekdayOfYear() int {
	return isoWeekday(z.yearBoundary(time.December, 31).Weekday())
}

// DaysInYear returns 365 or 366.
func (z *Time) DaysInYear() int {
	return z.yearBoundary(time.December, 31).YearDay()
}

// WeeksInYear returns the number of weeks in z's week-based year. It reads
// the week of December 31, stepping back a week when December 31 already
// belongs to week 1 of the following year.
func (z *Time) WeeksInYear() int {
	last := z.yearBoundary(time.December, 31)
	if n := z.cal.week.weekOfWeekBasedYear(last); n > 1 {
		return n
	}
	return z.cal.week.weekOfWeekBasedYear(last.AddDate(0, 0, -7))
}

// yearBoundary builds 01:00 on the given day of z's year in z's zone.
func (z *Time) yearBoundary(month time.Month, day int) time.Time {
	return time.Date(z.t.Year(), month, day, 1, 0, 0, 0, z.t.Location())
}
