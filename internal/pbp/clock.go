// Package pbp reconstructs time-windowed facts from ordered play-by-play
// event streams: who was on the court at any instant, the score at any
// instant, clutch moments, and stats sliced by lineup, presence, quarter
// and situation. Everything here is a pure function of its inputs; no
// event slice is ever mutated.
package pbp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidClock is wrapped by clock parse failures.
var ErrInvalidClock = errors.New("invalid game clock")

// Regulation periods run 12:00, overtime periods 5:00.
const (
	regulationPeriodSeconds = 720
	overtimePeriodSeconds   = 300
	regulationPeriods       = 4
)

// ClockToSeconds parses a countdown clock string ("M:SS" or "MM:SS") into
// seconds remaining in the period. Malformed input is an error, never a
// silent zero; callers that want leniency substitute their own default.
func ClockToSeconds(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	if minutes < 0 || seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	return minutes*60 + seconds, nil
}

// PeriodLengthSeconds returns the full length of a period in seconds:
// 720 for regulation quarters, 300 for overtime periods.
func PeriodLengthSeconds(period int) int {
	if period > regulationPeriods {
		return overtimePeriodSeconds
	}
	return regulationPeriodSeconds
}
