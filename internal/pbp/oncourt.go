package pbp

import (
	"sort"

	"github.com/fortuna/courtside/internal/store"
)

// Interval is a contiguous on-court span within one period. Start and
// End are seconds remaining on the countdown clock, so Start > End.
type Interval struct {
	Period int `json:"period"`
	Start  int `json:"start_seconds_remaining"`
	End    int `json:"end_seconds_remaining"`
}

// Seconds returns the interval's length.
func (iv Interval) Seconds() int {
	return iv.Start - iv.End
}

// Contains reports whether a (period, timeRemaining) moment falls
// strictly inside the interval. Boundary moments belong to neither side
// of a substitution.
func (iv Interval) Contains(period, timeRemaining int) bool {
	return iv.Period == period && timeRemaining < iv.Start && timeRemaining > iv.End
}

// OnCourtIntervals reconstructs the maximal spans during which every
// listed player was on the court at the same time. At the top of every
// period state resets: "on" for starters, "off" otherwise. It flips
// only on SUBSTITUTION IN/OUT events. Players who never overlap produce
// an empty slice, never an error.
func OnCourtIntervals(events []*store.PlayByPlayEvent, starters map[int]bool, playerIDs []int) []Interval {
	if len(playerIDs) == 0 {
		return nil
	}

	joint := PlayerIntervals(events, starters, playerIDs[0])
	for _, id := range playerIDs[1:] {
		joint = intersectIntervals(joint, PlayerIntervals(events, starters, id))
		if len(joint) == 0 {
			return nil
		}
	}
	return joint
}

// PlayerIntervals computes a single player's on-court partition across
// every period observed in the event stream.
func PlayerIntervals(events []*store.PlayByPlayEvent, starters map[int]bool, playerID int) []Interval {
	periods := observedPeriods(events)
	starter := starters[playerID]

	var intervals []Interval
	for _, period := range periods {
		length := PeriodLengthSeconds(period)
		on := starter
		openAt := length

		for _, ev := range events {
			if ev.Period != period || ev.EventType != store.EventSubstitution || !ev.ActorIs(playerID) {
				continue
			}
			sec, err := ClockToSeconds(ev.Clock)
			if err != nil {
				continue
			}

			switch ev.Subtype() {
			case store.SubOut:
				if on {
					if openAt > sec {
						intervals = append(intervals, Interval{Period: period, Start: openAt, End: sec})
					}
					on = false
				}
			case store.SubIn:
				if !on {
					openAt = sec
					on = true
				}
			}
		}

		if on && openAt > 0 {
			intervals = append(intervals, Interval{Period: period, Start: openAt, End: 0})
		}
	}

	return intervals
}

// IntervalMinutes sums interval lengths in minutes.
func IntervalMinutes(intervals []Interval) float64 {
	total := 0
	for _, iv := range intervals {
		total += iv.Seconds()
	}
	return float64(total) / 60.0
}

// ObservedGameSeconds is the total period time covered by the event
// stream: the sum of full period lengths for every period that appears.
func ObservedGameSeconds(events []*store.PlayByPlayEvent) int {
	total := 0
	for _, period := range observedPeriods(events) {
		total += PeriodLengthSeconds(period)
	}
	return total
}

// intersectIntervals intersects two interval partitions period by
// period. Both inputs are ordered by (period, descending start).
func intersectIntervals(a, b []Interval) []Interval {
	var out []Interval
	for _, ia := range a {
		for _, ib := range b {
			if ia.Period != ib.Period {
				continue
			}
			start := minInt(ia.Start, ib.Start)
			end := maxInt(ia.End, ib.End)
			if start > end {
				out = append(out, Interval{Period: ia.Period, Start: start, End: end})
			}
		}
	}
	return out
}

// observedPeriods lists the distinct periods present in the stream,
// ascending. A game with no events has no observable periods.
func observedPeriods(events []*store.PlayByPlayEvent) []int {
	seen := map[int]bool{}
	for _, ev := range events {
		if ev.Period > 0 {
			seen[ev.Period] = true
		}
	}

	periods := make([]int, 0, len(seen))
	for p := range seen {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	return periods
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
