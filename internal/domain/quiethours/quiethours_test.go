package quiethours

import (
	"testing"
	"time"
)

// helper: build a local time at the given clock on a fixed day
func at(t *testing.T, hh, mm int) time.Time {
	t.Helper()
	return time.Date(2025, time.March, 10, hh, mm, 0, 0, time.Local)
}

func mins(hh, mm int) int { return hh*60 + mm }

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"22:00", 1320, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsWithin_NonWrappingWindow(t *testing.T) {
	// window 09:00-17:00, both boundaries inclusive
	start, end := mins(9, 0), mins(17, 0)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before start", at(t, 8, 59), false},
		{"exactly at start", at(t, 9, 0), true},
		{"middle", at(t, 12, 30), true},
		{"exactly at end", at(t, 17, 0), true},
		{"after end", at(t, 17, 1), false},
		{"midnight", at(t, 0, 0), false},
	}
	for _, tt := range tests {
		if got := IsWithin(tt.at, start, end); got != tt.want {
			t.Errorf("%s: IsWithin = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsWithin_WrappingWindow(t *testing.T) {
	// window 22:00-08:00 crosses midnight: [22:00,24:00) U [00:00,08:00]
	start, end := mins(22, 0), mins(8, 0)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"late evening inside", at(t, 23, 50), true},
		{"exactly at start", at(t, 22, 0), true},
		{"just before start", at(t, 21, 59), false},
		{"midnight", at(t, 0, 0), true},
		{"early morning", at(t, 7, 40), true},
		{"exactly at end", at(t, 8, 0), true},
		{"just after end", at(t, 8, 1), false},
		{"mid morning outside", at(t, 9, 30), false},
		{"afternoon outside", at(t, 15, 0), false},
	}
	for _, tt := range tests {
		if got := IsWithin(tt.at, start, end); got != tt.want {
			t.Errorf("%s: IsWithin = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAdjust_SameDay(t *testing.T) {
	// 07:40 adjusted to an 08:00 window end stays on the same day
	scheduled := at(t, 7, 40)
	got := Adjust(scheduled, mins(8, 0))

	want := at(t, 8, 0)
	if !got.Equal(want) {
		t.Fatalf("Adjust(07:40, 08:00) = %v, want %v", got, want)
	}
}

func TestAdjust_RollsToNextDay(t *testing.T) {
	// 23:50 adjusted to an 08:00 window end lands on the next day
	scheduled := at(t, 23, 50)
	got := Adjust(scheduled, mins(8, 0))

	want := at(t, 8, 0).AddDate(0, 0, 1)
	if !got.Equal(want) {
		t.Fatalf("Adjust(23:50, 08:00) = %v, want %v", got, want)
	}
}

func TestAdjust_ExactBoundaryRollsForward(t *testing.T) {
	// A scheduled time already sitting exactly on the window end must
	// advance a full calendar day: the naive same-day candidate is not
	// strictly after the input.
	scheduled := at(t, 8, 0)
	got := Adjust(scheduled, mins(8, 0))

	want := at(t, 8, 0).AddDate(0, 0, 1)
	if !got.Equal(want) {
		t.Fatalf("Adjust(08:00, 08:00) = %v, want %v", got, want)
	}
}

func TestAdjust_ZeroesSecondsAndClockMatchesEnd(t *testing.T) {
	scheduled := time.Date(2025, time.March, 10, 23, 50, 37, 123456, time.Local)
	endM := mins(8, 0)
	got := Adjust(scheduled, endM)

	if got.Hour()*60+got.Minute() != endM {
		t.Errorf("result clock = %02d:%02d, want 08:00", got.Hour(), got.Minute())
	}
	if got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("seconds/nanos not zeroed: %v", got)
	}
	if !got.After(scheduled) {
		t.Errorf("result %v not after scheduled %v", got, scheduled)
	}
}
