package zoned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTags(t *testing.T) {
	t.Parallel()
	z := at(t, newTestCalendar(), 2024, 3, 5, 0, 0, 0, 0, "UTC")

	z.SetID("release")
	z.SetDescription("v1.2 cut")
	assert.Equal(t, "release", z.ID())
	assert.Equal(t, "v1.2 cut", z.Description())

	z.SetID("")
	assert.Empty(t, z.ID())
}

func TestSetNow(t *testing.T) {
	t.Parallel()
	z := at(t, newTestCalendar(), 2000, 1, 1, 0, 0, 0, 0, "Asia/Tokyo")

	z.SetNow()
	assert.True(t, z.Std().Equal(testNow))
	assert.Equal(t, "TestLocal", z.ZoneID())
}

func TestSetNowIn(t *testing.T) {
	t.Parallel()
	z := at(t, newTestCalendar(), 2000, 1, 1, 0, 0, 0, 0, "UTC")

	require.NoError(t, z.SetNowIn("Asia/Tokyo"))
	assert.True(t, z.Std().Equal(testNow))
	assert.Equal(t, "Asia/Tokyo", z.ZoneID())

	before := *z
	assert.ErrorIs(t, z.SetNowIn("Not/AZone"), ErrUnknownZone)
	assert.Equal(t, before, *z, "failed SetNowIn must not change the value")
}

func TestSetDateTime(t *testing.T) {
	t.Parallel()
	cal := newTestCalendar()

	t.Run("valid", func(t *testing.T) {
		z := at(t, cal, 2000, 1, 1, 0, 0, 0, 0, "UTC")
		require.NoError(t, z.SetDateTime(2024, 2, 29, 23, 59, 58, 7, "Europe/Budapest"))
		assert.Equal(t, [3]int{2024, 2, 29}, z.Date())
		assert.Equal(t, [4]int{23, 59, 58, 7}, z.Clock())
		assert.Equal(t, "Europe/Budapest", z.ZoneID())
	})

	t.Run("unknown zone", func(t *testing.T) {
		z := at(t, cal, 2000, 1, 1, 0, 0, 0, 0, "UTC")
		before := *z
		assert.ErrorIs(t, z.SetDateTime(2024, 2, 29, 0, 0, 0, 0, "Not/AZone"), ErrUnknownZone)
		assert.Equal(t, before, *z)
	})

	t.Run("invalid fields", func(t *testing.T) {
		z := at(t, cal, 2000, 1, 1, 0, 0, 0, 0, "UTC")
		before := *z
		assert.ErrorIs(t, z.SetDateTime(2023, 2, 29, 0, 0, 0, 0, "UTC"), ErrInvalidDateTime)
		assert.Equal(t, before, *z)
	})

	t.Run("components", func(t *testing.T) {
		z := at(t, cal, 2000, 1, 1, 0, 0, 0, 0, "UTC")
		require.NoError(t, z.SetComponents([3]int{1999, 12, 31}, [4]int{1, 2, 3, 4}, "GMT-05:00"))
		assert.Equal(t, [3]int{1999, 12, 31}, z.Date())
		assert.Equal(t, [4]int{1, 2, 3, 4}, z.Clock())
		assert.Equal(t, "GMT-05:00", z.ZoneID())

		before := *z
		assert.Error(t, z.SetComponents([3]int{1999, 12, 32}, [4]int{0, 0, 0, 0}, "UTC"))
		assert.Equal(t, before, *z)
	})
}

func TestFieldSetters(t *testing.T) {
	t.Parallel()
	cal := newTestCalendar()

	tests := []struct {
		name     string
		base     [3]int
		set      func(*Time) error
		wantDate [3]int
		wantTime [4]int
		wantErr  bool
	}{
		{"day 31 on April fails", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetDay(31) }, [3]int{}, [4]int{}, true},
		{"day 1", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetDay(1) }, [3]int{2024, 4, 1}, [4]int{10, 20, 30, 400}, false},
		{"day zero fails", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetDay(0) }, [3]int{}, [4]int{}, true},
		{"month 5", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetMonth(5) }, [3]int{2024, 5, 30}, [4]int{10, 20, 30, 400}, false},
		{"month 2 on day 30 fails", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetMonth(2) }, [3]int{}, [4]int{}, true},
		{"month 13 fails", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetMonth(13) }, [3]int{}, [4]int{}, true},
		{"year 2023", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetYear(2023) }, [3]int{2023, 4, 30}, [4]int{10, 20, 30, 400}, false},
		{"non-leap year on Feb 29 fails", [3]int{2024, 2, 29}, func(z *Time) error { return z.SetYear(2023) }, [3]int{}, [4]int{}, true},
		{"year above range fails", [3]int{2024, 2, 1}, func(z *Time) error { return z.SetYear(MaxYear + 1) }, [3]int{}, [4]int{}, true},
		{"hour 0", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetHour(0) }, [3]int{2024, 4, 30}, [4]int{0, 20, 30, 400}, false},
		{"hour 24 fails", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetHour(24) }, [3]int{}, [4]int{}, true},
		{"minute 59", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetMinute(59) }, [3]int{2024, 4, 30}, [4]int{10, 59, 30, 400}, false},
		{"minute 60 fails", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetMinute(60) }, [3]int{}, [4]int{}, true},
		{"second 0", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetSecond(0) }, [3]int{2024, 4, 30}, [4]int{10, 20, 0, 400}, false},
		{"second -1 fails", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetSecond(-1) }, [3]int{}, [4]int{}, true},
		{"nanosecond max", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetNanosecond(999_999_999) }, [3]int{2024, 4, 30}, [4]int{10, 20, 30, 999_999_999}, false},
		{"nanosecond 1e9 fails", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetNanosecond(1_000_000_000) }, [3]int{}, [4]int{}, true},
		{"year day 366 in leap year", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetYearDay(366) }, [3]int{2024, 12, 31}, [4]int{10, 20, 30, 400}, false},
		{"year day 60 in leap year", [3]int{2024, 4, 30}, func(z *Time) error { return z.SetYearDay(60) }, [3]int{2024, 2, 29}, [4]int{10, 20, 30, 400}, false},
		{"year day 366 in common year fails", [3]int{2023, 4, 30}, func(z *Time) error { return z.SetYearDay(366) }, [3]int{}, [4]int{}, true},
		{"year day 0 fails", [3]int{2023, 4, 30}, func(z *Time) error { return z.SetYearDay(0) }, [3]int{}, [4]int{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := at(t, cal, tt.base[0], tt.base[1], tt.base[2], 10, 20, 30, 400, "Europe/Budapest")
			before := *z

			err := tt.set(z)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateTime)
				assert.Equal(t, before, *z, "failed setter must leave the value unchanged")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, z.Date())
			assert.Equal(t, tt.wantTime, z.Clock())
			assert.Equal(t, "Europe/Budapest", z.ZoneID())
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	z := at(t, newTestCalendar(), 2024, 3, 5, 10, 15, 30, 99, "Europe/Budapest")
	z.SetID("orig")
	z.SetDescription("original value")

	c := z.Clone()
	assert.NotSame(t, z, c)
	assert.True(t, z.Equal(c))
	assert.Equal(t, z.Date(), c.Date())
	assert.Equal(t, z.Clock(), c.Clock())
	assert.Equal(t, z.ZoneID(), c.ZoneID())
	assert.Equal(t, z.FullInfo(), c.FullInfo())

	c.SetID("copy")
	require.NoError(t, c.AddDays(1))
	require.NoError(t, c.ChangeZone("Asia/Tokyo"))

	assert.Equal(t, "orig", z.ID())
	assert.Equal(t, [3]int{2024, 3, 5}, z.Date())
	assert.Equal(t, "Europe/Budapest", z.ZoneID())
}
