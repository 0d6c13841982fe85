package zoned_test

import (
	"errors"
	"fmt"

	"github.com/rabitt1ove/zoned"
)

func ExampleDate() {
	t := zoned.Date(2024, 3, 5, 10, 15, 30, 0, "Europe/Budapest")
	fmt.Println(t)
	// Output: 2024-03-05T10:15:30+01:00[Europe/Budapest]
}

func ExampleResolveZone() {
	for _, spec := range []string{"GMT+1", "UTC-05:30", "+05:30", "Z", "Asia/Tokyo"} {
		loc, err := zoned.ResolveZone(spec)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(loc)
	}
	_, err := zoned.ResolveZone("Mars/Olympus")
	fmt.Println(errors.Is(err, zoned.ErrUnknownZone))
	// Output:
	// GMT+01:00
	// UTC-05:30
	// +05:30
	// Z
	// Asia/Tokyo
	// true
}

func ExampleTime_AddMonths() {
	t := zoned.Date(2024, 1, 31, 9, 0, 0, 0, "Europe/Budapest")
	if err := t.AddMonths(1); err != nil {
		panic(err)
	}
	fmt.Println(t.FormatDate(1, 2, 3, false, true, '-'))
	// Output: 2024-02-29
}

func ExampleTime_SetMonth() {
	t := zoned.Date(2024, 1, 31, 9, 0, 0, 0, "UTC")
	err := t.SetMonth(2)
	fmt.Println(errors.Is(err, zoned.ErrInvalidDateTime))
	fmt.Println(t.FormatDate(1, 2, 3, false, true, '-'))
	// Output:
	// true
	// 2024-01-31
}

func ExampleTime_ChangeZone() {
	t := zoned.Date(2024, 3, 5, 10, 0, 0, 0, "Europe/Budapest")
	if err := t.ChangeZone("Asia/Tokyo"); err != nil {
		panic(err)
	}
	fmt.Println(t.FormatClock(1, 2, 3, true, ':'), t.ZoneOffset())
	// Output: 18:00:00 +09:00
}

func ExampleTime_FormatDate() {
	t := zoned.Date(2024, 3, 5, 0, 0, 0, 0, "UTC")
	fmt.Println(t.FormatDate(3, 2, 1, false, true, '.'))
	fmt.Println(t.FormatDate(1, 2, 3, true, false, '-'))
	fmt.Println(t.FormatDate(1, 1, 2, false, true, '-') == "")
	// Output:
	// 05.03.2024
	// 2024 March 5
	// true
}

func ExampleTime_Week() {
	cal := zoned.NewCalendar(zoned.WithWeekConvention(zoned.ISOWeek))
	t := cal.Date(2024, 12, 31, 12, 0, 0, 0, "UTC")
	fmt.Println(t.Week(), t.WeeksInYear())
	// Output: 1 52
}

func ExampleDifference() {
	a := zoned.Date(2024, 3, 5, 10, 0, 0, 0, "Europe/Budapest")
	b := zoned.Date(2024, 3, 6, 11, 30, 0, 0, "Europe/Budapest")
	if err := b.ChangeZone("America/New_York"); err != nil {
		panic(err)
	}
	fmt.Printf("%+v\n", zoned.Difference(a, b))
	// Output: {Days:1 Hours:1 Minutes:30 Seconds:0 Nanoseconds:0}
}

func ExampleTime_FullInfo() {
	t := zoned.Date(2024, 3, 5, 10, 15, 30, 0, "GMT+01:00")
	t.SetID("evt-7")
	t.SetDescription("release")
	fmt.Println(t.FullInfo())
	// Output: evt-7, release, 2024-03-05T10:15:30+01:00[GMT+01:00]
}

func ExampleZonesForCountry() {
	for _, z := range zoned.ZonesForCountry("hu") {
		fmt.Println(z.ID)
	}
	// Output: Europe/Budapest
}
