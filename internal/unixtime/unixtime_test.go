package unixtime

import (
	"testing"
	"time"
)

func TestFromDateTime(t *testing.T) {
	dates := []struct {
		year, month, day, hour, minute, second int
	}{
		{1970, 1, 1, 0, 0, 0},
		{1969, 12, 31, 23, 59, 59},
		{2000, 2, 29, 12, 30, 45}, // leap year divisible by 400
		{1900, 3, 1, 0, 0, 0},     // 1900 is not a leap year
		{2019, 7, 1, 12, 0, 0},
		{2038, 1, 19, 3, 14, 8},
		{1883, 11, 18, 12, 0, 0},
	}
	for _, d := range dates {
		want := time.Date(d.year, time.Month(d.month), d.day, d.hour, d.minute, d.second, 0, time.UTC).Unix()
		got := FromDateTime(d.year, d.month, d.day, d.hour, d.minute, d.second)
		if got != want {
			t.Errorf("FromDateTime(%+v) = %d, want %d", d, got, want)
		}
	}
}

func TestYearBounds(t *testing.T) {
	begin, end := YearBounds(2019)
	if want := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC).Unix(); begin != want {
		t.Errorf("begin = %d, want %d", begin, want)
	}
	if want := time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC).Unix(); end != want {
		t.Errorf("end = %d, want %d", end, want)
	}
}
