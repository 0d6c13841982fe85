package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rabitt1ove/zoned"
)

// parseDate reads yyyy-mm-dd.
func parseDate(s string) ([3]int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || !zoned.IsDateString(parts[0], parts[1], parts[2]) {
		return [3]int{}, fmt.Errorf("invalid date %q (want yyyy-mm-dd)", s)
	}
	var d [3]int
	for i, p := range parts {
		d[i], _ = strconv.Atoi(p)
	}
	return d, nil
}

// parseClock reads hh:mm or hh:mm:ss.
func parseClock(s string) ([3]int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return [3]int{}, fmt.Errorf("invalid time %q (want hh:mm:ss)", s)
	}
	limits := [3]int{23, 59, 59}
	var c [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return [3]int{}, fmt.Errorf("invalid time %q (want hh:mm:ss)", s)
		}
		c[i] = n
	}
	return c, nil
}

// parseStamp reads yyyy-mm-ddThh:mm:ss@zone. Without @zone the --zone value
// applies.
func parseStamp(s string) (*zoned.Time, error) {
	stamp, zone, _ := strings.Cut(s, "@")
	ds, cs, ok := strings.Cut(stamp, "T")
	if !ok {
		return nil, fmt.Errorf("invalid timestamp %q (want yyyy-mm-ddThh:mm:ss@zone)", s)
	}
	d, err := parseDate(ds)
	if err != nil {
		return nil, err
	}
	c, err := parseClock(cs)
	if err != nil {
		return nil, err
	}
	return build(d, c, zoneOr(zone))
}

// build constructs a Time from already validated fields. An unknown zone is
// an error; an empty one selects the local zone.
func build(d, c [3]int, zone string) (*zoned.Time, error) {
	if err := checkZone(zone); err != nil {
		return nil, err
	}
	return cal.FromComponents(d, [4]int{c[0], c[1], c[2], 0}, zone), nil
}
