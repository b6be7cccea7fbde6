package pbp

import (
	"strings"

	"github.com/fortuna/courtside/internal/store"
)

// Score is a home/away point pair at some game cursor.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Margin returns the absolute point difference.
func (s Score) Margin() int {
	d := s.Home - s.Away
	if d < 0 {
		return -d
	}
	return d
}

// ScoreAt replays every scoring event at or before the (period,
// timeRemaining) cursor and returns the score entering that moment.
// Events whose clock equals the cursor count as simultaneous and are
// included; callers that need the score strictly before an event query
// at the event's time plus one second. Events with unparseable clocks
// are skipped. An empty event slice yields 0-0.
func ScoreAt(game *store.Game, events []*store.PlayByPlayEvent, period, timeRemaining int) Score {
	var score Score
	if game == nil {
		return score
	}

	for _, ev := range events {
		if ev.Period > period {
			break
		}
		if ev.Period == period {
			sec, err := ClockToSeconds(ev.Clock)
			if err != nil || sec < timeRemaining {
				// clock has ticked past the cursor; everything after is later
				if err == nil {
					break
				}
				continue
			}
		}

		pts := PointValue(ev)
		if pts == 0 {
			continue
		}
		switch {
		case ev.ForTeam(game.HomeTeamID):
			score.Home += pts
		case ev.ForTeam(game.AwayTeamID):
			score.Away += pts
		}
	}

	return score
}

// FinalScore replays the whole event log.
func FinalScore(game *store.Game, events []*store.PlayByPlayEvent) Score {
	var score Score
	if game == nil {
		return score
	}

	for _, ev := range events {
		pts := PointValue(ev)
		if pts == 0 {
			continue
		}
		switch {
		case ev.ForTeam(game.HomeTeamID):
			score.Home += pts
		case ev.ForTeam(game.AwayTeamID):
			score.Away += pts
		}
	}

	return score
}

// MarginBefore computes the score margin entering an event: the score at
// one second earlier on the clock, so the event itself never counts
// toward its own margin.
func MarginBefore(game *store.Game, events []*store.PlayByPlayEvent, ev *store.PlayByPlayEvent) int {
	sec, err := ClockToSeconds(ev.Clock)
	if err != nil {
		sec = 0
	}
	return ScoreAt(game, events, ev.Period, sec+1).Margin()
}

// PointValue returns the points an event is worth: 3 or 2 for a made
// shot, 1 for a made free throw, 0 otherwise.
func PointValue(ev *store.PlayByPlayEvent) int {
	if !ev.Success.Valid || !ev.Success.Bool {
		return 0
	}
	switch ev.EventType {
	case store.EventShot:
		if isThreePointer(ev) {
			return 3
		}
		return 2
	case store.EventFreeThrow:
		return 1
	}
	return 0
}

// isThreePointer checks the subtype qualifier for a three-point marker
// ("3PT", "3pt", ...).
func isThreePointer(ev *store.PlayByPlayEvent) bool {
	return strings.Contains(strings.ToUpper(ev.Subtype()), "3")
}
