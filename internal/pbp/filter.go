package pbp

import (
	"errors"

	"github.com/fortuna/courtside/internal/store"
)

// Filter construction errors, surfaced before any event is touched.
var (
	ErrPeriodConflict = errors.New("time filter: period and periods are mutually exclusive")
	ErrTimeRange      = errors.New("time filter: min_time_remaining exceeds max_time_remaining")
	ErrNoTrendScope   = errors.New("performance trend requires a player or a team scope")
)

// GarbageTimeMargin is the point margin beyond which late-game events
// are treated as garbage time by ExcludeGarbageTime.
const GarbageTimeMargin = 20

// TimeFilter narrows events by period and by seconds remaining. Period
// and Periods are mutually exclusive.
type TimeFilter struct {
	Period             *int  `json:"period,omitempty"`
	Periods            []int `json:"periods,omitempty"`
	MinTimeRemaining   *int  `json:"min_time_remaining,omitempty"`
	MaxTimeRemaining   *int  `json:"max_time_remaining,omitempty"`
	ExcludeGarbageTime bool  `json:"exclude_garbage_time"`
}

// Validate fails fast on contradictory bounds.
func (f TimeFilter) Validate() error {
	if f.Period != nil && len(f.Periods) > 0 {
		return ErrPeriodConflict
	}
	if f.MinTimeRemaining != nil && f.MaxTimeRemaining != nil && *f.MinTimeRemaining > *f.MaxTimeRemaining {
		return ErrTimeRange
	}
	return nil
}

// EventsByTime returns the events matching the time filter, preserving
// event order. Events with unparseable clocks are dropped whenever a
// clock-dependent predicate is active.
func EventsByTime(game *store.Game, events []*store.PlayByPlayEvent, f TimeFilter) ([]*store.PlayByPlayEvent, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var out []*store.PlayByPlayEvent
	for _, ev := range events {
		if f.Period != nil && ev.Period != *f.Period {
			continue
		}
		if len(f.Periods) > 0 && !containsInt(f.Periods, ev.Period) {
			continue
		}

		if f.MinTimeRemaining != nil || f.MaxTimeRemaining != nil {
			sec, err := ClockToSeconds(ev.Clock)
			if err != nil {
				continue
			}
			if f.MinTimeRemaining != nil && sec < *f.MinTimeRemaining {
				continue
			}
			if f.MaxTimeRemaining != nil && sec > *f.MaxTimeRemaining {
				continue
			}
		}

		if f.ExcludeGarbageTime && MarginBefore(game, events, ev) > GarbageTimeMargin {
			continue
		}

		out = append(out, ev)
	}

	return out, nil
}

// ClutchFilter defines the late-game close-score window.
type ClutchFilter struct {
	TimeRemainingSeconds int  `json:"time_remaining_seconds"`
	ScoreMargin          int  `json:"score_margin"`
	IncludeOvertime      bool `json:"include_overtime"`
	MinPeriod            int  `json:"min_period"`
}

/// DefaultClutchFilter is the standard definition: last five minutes of
// the fourth quarter or overtime with the score within five points.
func DefaultClutchFilter() ClutchFilter {
	return ClutchFilter{
		TimeRemainingSeconds: 300,
		ScoreMargin:          5,
		IncludeOvertime:      true,
		MinPeriod:            4,
	}
}

// ClutchEvents returns every event inside the clutch window. The margin
// check uses the score entering each event, so a go-ahead basket that
// breaks the margin still counts as clutch itself.
func ClutchEvents(game *store.Game, events []*store.PlayByPlayEvent, f ClutchFilter) []*store.PlayByPlayEvent {
	if game == nil {
		return nil
	}

	var out []*store.PlayByPlayEvent
	for _, ev := range events {
		if ev.Period < f.MinPeriod {
			continue
		}
		if !f.IncludeOvertime && ev.Period != f.MinPeriod {
			continue
		}

		sec, err := ClockToSeconds(ev.Clock)
		if err != nil || sec > f.TimeRemainingSeconds {
			continue
		}

		if ScoreAt(game, events, ev.Period, sec+1).Margin() > f.ScoreMargin {
			continue
		}

		out = append(out, ev)
	}

	return out
}

// SituationalFilter matches shots by their situational attribute tags.
// Nil boolean fields and an empty ShotType mean "don't filter on this";
// all set predicates AND together.
type SituationalFilter struct {
	FastBreak    *bool  `json:"fast_break,omitempty"`
	SecondChance *bool  `json:"second_chance,omitempty"`
	Contested    *bool  `json:"contested,omitempty"`
	ShotType     string `json:"shot_type,omitempty"`
}

// ShotScope optionally narrows situational queries to one player or team.
type ShotScope struct {
	PlayerID int
	TeamID   int
}

// SituationalShots returns SHOT events whose attribute tags satisfy the
// filter. A missing tag never matches and never errors.
func SituationalShots(events []*store.PlayByPlayEvent, f SituationalFilter, scope ShotScope) []*store.PlayByPlayEvent {
	var out []*store.PlayByPlayEvent
	for _, ev := range events {
		if ev.EventType != store.EventShot {
			continue
		}
		if scope.PlayerID != 0 && !ev.ActorIs(scope.PlayerID) {
			continue
		}
		if scope.TeamID != 0 && !ev.ForTeam(scope.TeamID) {
			continue
		}

		if !attrBoolMatches(ev.Attributes, "fast_break", f.FastBreak) {
			continue
		}
		if !attrBoolMatches(ev.Attributes, "second_chance", f.SecondChance) {
			continue
		}
		if !attrBoolMatches(ev.Attributes, "contested", f.Contested) {
			continue
		}
		if f.ShotType != "" {
			tag, ok := ev.Attributes["shot_type"].(string)
			if !ok || tag != f.ShotType {
				continue
			}
		}

		out = append(out, ev)
	}

	return out
}

// ShotSplit is a made/attempted pair with the derived percentage.
type ShotSplit struct {
	Made      int     `json:"made"`
	Attempted int     `json:"attempted"`
	Pct       float64 `json:"pct"`
}

// SituationalStats aggregates matching shots into a make/attempt split.
// Zero attempts yields a zero percentage, not a division error.
func SituationalStats(events []*store.PlayByPlayEvent, f SituationalFilter, scope ShotScope) ShotSplit {
	var split ShotSplit
	for _, ev := range SituationalShots(events, f, scope) {
		split.Attempted++
		if ev.Success.Valid && ev.Success.Bool {
			split.Made++
		}
	}
	if split.Attempted > 0 {
		split.Pct = float64(split.Made) / float64(split.Attempted)
	}
	return split
}

// Add folds another split into this one, recomputing the percentage.
func (s *ShotSplit) Add(other ShotSplit) {
	s.Made += other.Made
	s.Attempted += other.Attempted
	if s.Attempted > 0 {
		s.Pct = float64(s.Made) / float64(s.Attempted)
	} else {
		s.Pct = 0
	}
}

// attrBoolMatches applies a tri-state boolean predicate against an
// attribute tag. A nil predicate always matches; a missing or non-bool
// tag matches only a nil predicate.
func attrBoolMatches(attrs map[string]any, key string, want *bool) bool {
	if want == nil {
		return true
	}
	got, ok := attrs[key].(bool)
	return ok && got == *want
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
