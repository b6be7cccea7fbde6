package pbp

import (
	"errors"
	"testing"
)

func TestClockToSeconds(t *testing.T) {
	tests := []struct {
		clock string
		want  int
	}{
		{"12:00", 720},
		{"6:30", 390},
		{"06:30", 390},
		{"0:00", 0},
		{"0:59", 59},
		{"1:05", 65},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			got, err := ClockToSeconds(tt.clock)
			if err != nil {
				t.Fatalf("ClockToSeconds(%q) returned error: %v", tt.clock, err)
			}
			if got != tt.want {
				t.Errorf("ClockToSeconds(%q) = %d, want %d", tt.clock, got, tt.want)
			}
		})
	}
}

func TestClockToSecondsInvalid(t *testing.T) {
	for _, clock := range []string{"", "12", "12:", ":30", "12:60", "-1:30", "2:-5", "a:bc", "1:2:3"} {
		t.Run(clock, func(t *testing.T) {
			_, err := ClockToSeconds(clock)
			if err == nil {
				t.Fatalf("ClockToSeconds(%q) did not fail", clock)
			}
			if !errors.Is(err, ErrInvalidClock) {
				t.Errorf("ClockToSeconds(%q) error = %v, want ErrInvalidClock", clock, err)
			}
		})
	}
}

func TestPeriodLengthSeconds(t *testing.T) {
	for period := 1; period <= 4; period++ {
		if got := PeriodLengthSeconds(period); got != 720 {
			t.Errorf("PeriodLengthSeconds(%d) = %d, want 720", period, got)
		}
	}
	for _, period := range []int{5, 6, 7} {
		if got := PeriodLengthSeconds(period); got != 300 {
			t.Errorf("PeriodLengthSeconds(%d) = %d, want 300", period, got)
		}
	}
}
