package zoned

import (
	"fmt"
	"strings"
	"time"
)

// maxOffset is the largest accepted fixed offset from UTC (18:00).
const maxOffset = 18 * 60 * 60

// utcZone is the zero-offset frame used when differencing two instants.
const utcZone = "GMT+00:00"

var zeroZone = time.FixedZone("Z", 0)

// offsetPrefixes are the meridian prefixes accepted ahead of a signed offset.
// UTC must precede UT.
var offsetPrefixes = []string{"UTC", "GMT", "UT"}

// resolveStructural maps a zone specifier to a location without consulting
// aliases or the cache. Recognized forms, tried in order:
//
//	GMT+01:30, UTC-5, UT+0130, +05:30   fixed offset, no daylight saving
//	Europe/Budapest                     region zone from the zone database
//	CET, EST                            abbreviation from the zone database
//	Z                                   zero offset
func resolveStructural(spec string) (*time.Location, error) {
	switch spec {
	case "Z":
		return zeroZone, nil
	case "UTC":
		return time.UTC, nil
	case "GMT", "UT":
		return time.FixedZone(spec, 0), nil
	}

	if spec != "" && (spec[0] == '+' || spec[0] == '-') {
		off, err := parseOffset(spec)
		if err != nil {
			return nil, err
		}
		if off == 0 {
			return zeroZone, nil
		}
		return time.FixedZone(offsetID(off), off), nil
	}

	for _, prefix := range offsetPrefixes {
		rest, ok := strings.CutPrefix(spec, prefix)
		if !ok || rest == "" || (rest[0] != '+' && rest[0] != '-') {
			continue
		}
		off, err := parseOffset(rest)
		if err != nil {
			return nil, err
		}
		if off == 0 {
			if prefix == "UTC" {
				return time.UTC, nil
			}
			return time.FixedZone(prefix, 0), nil
		}
		return time.FixedZone(prefix+offsetID(off), off), nil
	}

	if !isRegionID(spec) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, spec)
	}
	loc, err := time.LoadLocation(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, spec, err)
	}
	return loc, nil
}

// isRegionID reports whether s has the shape of a zone database ID:
// a letter followed by one or more of [A-Za-z0-9~/._+-].
// "Local" is excluded because the time package maps it to the process zone.
func isRegionID(s string) bool {
	if len(s) < 2 || s == "Local" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i == 0:
			return false
		case r >= '0' && r <= '9', strings.ContainsRune("~/._+-", r):
		default:
			return false
		}
	}
	return true
}

// parseOffset parses a signed offset in one of the forms ±h, ±hh, ±hh:mm,
// ±hhmm, ±hh:mm:ss or ±hhmmss and returns it in seconds east of UTC.
func parseOffset(s string) (int, error) {
	bad := func() (int, error) {
		return 0, fmt.Errorf("%w: invalid offset %q", ErrUnknownZone, s)
	}
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return bad()
	}
	body := s[1:]

	var hh, mm, ss string
	switch len(body) {
	case 1, 2:
		hh = body
	case 4:
		hh, mm = body[:2], body[2:]
	case 5:
		if body[2] != ':' {
			return bad()
		}
		hh, mm = body[:2], body[3:]
	case 6:
		hh, mm, ss = body[:2], body[2:4], body[4:]
	case 8:
		if body[2] != ':' || body[5] != ':' {
			return bad()
		}
		hh, mm, ss = body[:2], body[3:5], body[6:]
	default:
		return bad()
	}

	h, ok1 := digits(hh)
	m, ok2 := digits(mm)
	sec, ok3 := digits(ss)
	if !ok1 || !ok2 || !ok3 || m > 59 || sec > 59 {
		return bad()
	}
	total := h*3600 + m*60 + sec
	if total > maxOffset {
		return bad()
	}
	if s[0] == '-' {
		total = -total
	}
	return total, nil
}

// digits parses an unsigned decimal; the empty string is zero.
func digits(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// offsetID renders an offset in seconds as Z, ±hh:mm or ±hh:mm:ss.
func offsetID(off int) string {
	if off == 0 {
		return "Z"
	}
	sign := '+'
	if off < 0 {
		sign = '-'
		off = -off
	}
	h, m, s := off/3600, off/60%60, off%60
	if s != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}
