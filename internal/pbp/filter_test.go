package pbp

import (
	"errors"
	"testing"
)

func TestTimeFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  TimeFilter
		wantErr error
	}{
		{"empty", TimeFilter{}, nil},
		{"single period", TimeFilter{Period: intPtr(4)}, nil},
		{"period set", TimeFilter{Periods: []int{1, 2}}, nil},
		{"both period fields", TimeFilter{Period: intPtr(1), Periods: []int{2}}, ErrPeriodConflict},
		{"inverted range", TimeFilter{MinTimeRemaining: intPtr(300), MaxTimeRemaining: intPtr(100)}, ErrTimeRange},
		{"valid range", TimeFilter{MinTimeRemaining: intPtr(100), MaxTimeRemaining: intPtr(300)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEventsByTime(t *testing.T) {
	b := newGame()
	q1 := b.shot(1, "10:00", homeTeam, playerA, true)
	q2early := b.shot(2, "9:00", awayTeam, playerE, true)
	q2late := b.shot(2, "1:30", homeTeam, playerB, false)
	q4 := b.shot(4, "0:45", awayTeam, playerE, true)

	tests := []struct {
		name   string
		filter TimeFilter
		want   []int
	}{
		{"single period", TimeFilter{Period: intPtr(2)}, []int{q2early.EventNumber, q2late.EventNumber}},
		{"period set", TimeFilter{Periods: []int{1, 4}}, []int{q1.EventNumber, q4.EventNumber}},
		{"time window", TimeFilter{MinTimeRemaining: intPtr(60), MaxTimeRemaining: intPtr(120)},
			[]int{q2late.EventNumber}},
		{"last minute anywhere", TimeFilter{MaxTimeRemaining: intPtr(60)}, []int{q4.EventNumber}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EventsByTime(b.game, b.events, tt.filter)
			if err != nil {
				t.Fatalf("EventsByTime returned error: %v", err)
			}
			if !sameInts(eventNumbers(got), tt.want) {
				t.Errorf("EventsByTime = %v, want %v", eventNumbers(got), tt.want)
			}
		})
	}
}

func TestEventsByTimeInvalidFilter(t *testing.T) {
	b := newGame()
	_, err := EventsByTime(b.game, b.events, TimeFilter{Period: intPtr(1), Periods: []int{2}})
	if !errors.Is(err, ErrPeriodConflict) {
		t.Fatalf("EventsByTime error = %v, want ErrPeriodConflict", err)
	}
}

func TestEventsByTimeExcludesGarbageTime(t *testing.T) {
	b := newGame()
	// Home runs away with it: eight threes before halftime.
	for _, c := range []string{"11:00", "10:00", "9:00", "8:00", "7:00", "6:00", "5:00", "4:00"} {
		b.three(1, c, homeTeam, playerA, true)
	}
	competitive := b.events[0]
	garbage := b.shot(4, "2:00", awayTeam, playerE, true) // entering margin 24

	got, err := EventsByTime(b.game, b.events, TimeFilter{ExcludeGarbageTime: true})
	if err != nil {
		t.Fatalf("EventsByTime returned error: %v", err)
	}
	for _, ev := range got {
		if ev.EventNumber == garbage.EventNumber {
			t.Errorf("garbage-time event %d survived the filter", garbage.EventNumber)
		}
	}
	if len(got) == 0 || got[0].EventNumber != competitive.EventNumber {
		t.Errorf("competitive events should survive, got %v", eventNumbers(got))
	}
}

// Game tied 10-10 entering the fourth; events at 6:00 (outside the
// window), 4:00, 2:00 and 0:30. The default filter keeps exactly the
// last three.
func TestClutchEventsDefaultWindow(t *testing.T) {
	b := newGame()
	b.tiedThroughThree()
	early := b.shot(4, "6:00", homeTeam, playerA, true)        // 12-10, too early
	c1 := b.shot(4, "4:00", awayTeam, playerE, true)           // 12-12
	c2 := b.shot(4, "2:00", homeTeam, playerB, true)           // 14-12
	c3 := b.freeThrow(4, "0:30", awayTeam, playerE, true)      // 14-13

	got := ClutchEvents(b.game, b.events, DefaultClutchFilter())
	want := []int{c1.EventNumber, c2.EventNumber, c3.EventNumber}
	if !sameInts(eventNumbers(got), want) {
		t.Fatalf("ClutchEvents = %v, want %v", eventNumbers(got), want)
	}
	for _, ev := range got {
		if ev.EventNumber == early.EventNumber {
			t.Errorf("event outside the time window classified clutch")
		}
	}
}

// Every returned event satisfies all three clutch constraints.
func TestClutchEventsInvariant(t *testing.T) {
	b := newGame()
	b.tiedThroughThree()
	b.shot(4, "4:30", homeTeam, playerA, true)
	b.shot(4, "3:00", awayTeam, playerE, true)
	b.three(5, "2:00", homeTeam, playerB, true)

	filter := DefaultClutchFilter()
	for _, ev := range ClutchEvents(b.game, b.events, filter) {
		if ev.Period < filter.MinPeriod {
			t.Errorf("event %d in period %d below the floor", ev.EventNumber, ev.Period)
		}
		sec, err := ClockToSeconds(ev.Clock)
		if err != nil || sec > filter.TimeRemainingSeconds {
			t.Errorf("event %d outside the time ceiling (%s)", ev.EventNumber, ev.Clock)
		}
		if margin := MarginBefore(b.game, b.events, ev); margin > filter.ScoreMargin {
			t.Errorf("event %d entered with margin %d", ev.EventNumber, margin)
		}
	}
}

// A tighter window returns a strict subset of the standard window.
func TestClutchEventsSuperClutchSubset(t *testing.T) {
	b := newGame()
	b.tiedThroughThree()
	standardOnly := b.shot(4, "3:00", awayTeam, playerE, true)
	both := b.shot(4, "1:30", homeTeam, playerA, true)

	standard := ClutchEvents(b.game, b.events, DefaultClutchFilter())
	super := ClutchEvents(b.game, b.events, ClutchFilter{
		TimeRemainingSeconds: 120,
		ScoreMargin:          3,
		IncludeOvertime:      true,
		MinPeriod:            4,
	})

	if !sameInts(eventNumbers(standard), []int{standardOnly.EventNumber, both.EventNumber}) {
		t.Fatalf("standard clutch = %v", eventNumbers(standard))
	}
	if !sameInts(eventNumbers(super), []int{both.EventNumber}) {
		t.Fatalf("super clutch = %v, want only event %d", eventNumbers(super), both.EventNumber)
	}
}

func TestClutchEventsOvertimeToggle(t *testing.T) {
	b := newGame()
	b.tiedThroughThree()
	q4 := b.shot(4, "1:00", homeTeam, playerA, true)
	ot := b.shot(5, "2:00", awayTeam, playerE, true)

	withOT := ClutchEvents(b.game, b.events, DefaultClutchFilter())
	if !sameInts(eventNumbers(withOT), []int{q4.EventNumber, ot.EventNumber}) {
		t.Fatalf("with overtime = %v", eventNumbers(withOT))
	}

	noOT := DefaultClutchFilter()
	noOT.IncludeOvertime = false
	got := ClutchEvents(b.game, b.events, noOT)
	if !sameInts(eventNumbers(got), []int{q4.EventNumber}) {
		t.Fatalf("without overtime = %v, want only event %d", eventNumbers(got), q4.EventNumber)
	}
}

func TestSituationalShots(t *testing.T) {
	b := newGame()
	fastBreak := b.shot(1, "10:00", homeTeam, playerA, true)
	fastBreak.Attributes["fast_break"] = true
	fastBreak.Attributes["shot_type"] = "layup"

	contested := b.shot(1, "8:00", homeTeam, playerB, false)
	contested.Attributes["contested"] = true
	contested.Attributes["fast_break"] = false

	bare := b.shot(1, "6:00", awayTeam, playerE, true)
	b.add(1, "5:59", "REBOUND", "", awayTeam, playerE)

	tests := []struct {
		name   string
		filter SituationalFilter
		scope  ShotScope
		want   []int
	}{
		{"no predicates keeps all shots", SituationalFilter{}, ShotScope{},
			[]int{fastBreak.EventNumber, contested.EventNumber, bare.EventNumber}},
		{"fast break true", SituationalFilter{FastBreak: boolPtr(true)}, ShotScope{},
			[]int{fastBreak.EventNumber}},
		{"missing tag never matches", SituationalFilter{Contested: boolPtr(true)}, ShotScope{},
			[]int{contested.EventNumber}},
		{"shot type exact", SituationalFilter{ShotType: "layup"}, ShotScope{},
			[]int{fastBreak.EventNumber}},
		{"predicates AND together", SituationalFilter{FastBreak: boolPtr(true), Contested: boolPtr(true)}, ShotScope{},
			nil},
		{"player scope", SituationalFilter{}, ShotScope{PlayerID: playerE},
			[]int{bare.EventNumber}},
		{"team scope", SituationalFilter{}, ShotScope{TeamID: homeTeam},
			[]int{fastBreak.EventNumber, contested.EventNumber}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SituationalShots(b.events, tt.filter, tt.scope)
			if !sameInts(eventNumbers(got), tt.want) {
				t.Errorf("SituationalShots = %v, want %v", eventNumbers(got), tt.want)
			}
		})
	}
}

func TestSituationalStats(t *testing.T) {
	b := newGame()
	for i, made := range []bool{true, true, false, false} {
		ev := b.shot(1, []string{"10:00", "9:00", "8:00", "7:00"}[i], homeTeam, playerA, made)
		ev.Attributes["fast_break"] = true
	}

	split := SituationalStats(b.events, SituationalFilter{FastBreak: boolPtr(true)}, ShotScope{})
	if split.Made != 2 || split.Attempted != 4 || split.Pct != 0.5 {
		t.Errorf("SituationalStats = %+v, want 2/4 (0.5)", split)
	}

	empty := SituationalStats(b.events, SituationalFilter{ShotType: "dunk"}, ShotScope{})
	if empty.Made != 0 || empty.Attempted != 0 || empty.Pct != 0 {
		t.Errorf("no matches should be all zero, got %+v", empty)
	}
}
