package pbp

import (
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// StatLine is a bucket of counting stats accumulated from events.
type StatLine struct {
	Points                 int `json:"points"`
	FieldGoalsMade         int `json:"field_goals_made"`
	FieldGoalsAttempted    int `json:"field_goals_attempted"`
	ThreePointersMade      int `json:"three_pointers_made"`
	ThreePointersAttempted int `json:"three_pointers_attempted"`
	FreeThrowsMade         int `json:"free_throws_made"`
	FreeThrowsAttempted    int `json:"free_throws_attempted"`
	Rebounds               int `json:"rebounds"`
	Assists                int `json:"assists"`
	Steals                 int `json:"steals"`
	Blocks                 int `json:"blocks"`
	Turnovers              int `json:"turnovers"`
}

// Add folds another line into this one.
func (l *StatLine) Add(other *StatLine) {
	l.Points += other.Points
	l.FieldGoalsMade += other.FieldGoalsMade
	l.FieldGoalsAttempted += other.FieldGoalsAttempted
	l.ThreePointersMade += other.ThreePointersMade
	l.ThreePointersAttempted += other.ThreePointersAttempted
	l.FreeThrowsMade += other.FreeThrowsMade
	l.FreeThrowsAttempted += other.FreeThrowsAttempted
	l.Rebounds += other.Rebounds
	l.Assists += other.Assists
	l.Steals += other.Steals
	l.Blocks += other.Blocks
	l.Turnovers += other.Turnovers
}

// record tallies one event into the line.
func (l *StatLine) record(ev *store.PlayByPlayEvent) {
	made := ev.Success.Valid && ev.Success.Bool

	switch ev.EventType {
	case store.EventShot:
		l.FieldGoalsAttempted++
		three := isThreePointer(ev)
		if three {
			l.ThreePointersAttempted++
		}
		if made {
			l.FieldGoalsMade++
			if three {
				l.ThreePointersMade++
				l.Points += 3
			} else {
				l.Points += 2
			}
		}
	case store.EventFreeThrow:
		l.FreeThrowsAttempted++
		if made {
			l.FreeThrowsMade++
			l.Points++
		}
	case store.EventRebound:
		l.Rebounds++
	case store.EventAssist:
		l.Assists++
	case store.EventSteal:
		l.Steals++
	case store.EventBlock:
		l.Blocks++
	case store.EventTurnover:
		l.Turnovers++
	}
}

// QuarterKeys are the regulation bucket keys, always present in quarter
// breakdowns; OvertimeKey aggregates every period past regulation and
// appears only when such events exist.
var QuarterKeys = []string{"Q1", "Q2", "Q3", "Q4"}

// OvertimeKey labels the combined overtime bucket.
const OvertimeKey = "OT"

// quarterKey buckets a period: Q1-Q4 for regulation, OT for everything
// beyond.
func quarterKey(period int) string {
	if period > regulationPeriods {
		return OvertimeKey
	}
	return fmt.Sprintf("Q%d", period)
}

// PlayerStatsByQuarter partitions one player's counting stats per
// regulation quarter plus a combined OT bucket. Every event lands in
// exactly one bucket, so bucket sums reproduce game totals.
func PlayerStatsByQuarter(events []*store.PlayByPlayEvent, playerID int) map[string]*StatLine {
	return statsByQuarter(events, func(ev *store.PlayByPlayEvent) bool {
		return ev.ActorIs(playerID)
	})
}

// TeamStatsByQuarter partitions a team's counting stats the same way.
func TeamStatsByQuarter(events []*store.PlayByPlayEvent, teamID int) map[string]*StatLine {
	return statsByQuarter(events, func(ev *store.PlayByPlayEvent) bool {
		return ev.ForTeam(teamID)
	})
}

func statsByQuarter(events []*store.PlayByPlayEvent, match func(*store.PlayByPlayEvent) bool) map[string]*StatLine {
	buckets := make(map[string]*StatLine, len(QuarterKeys)+1)
	for _, key := range QuarterKeys {
		buckets[key] = &StatLine{}
	}

	for _, ev := range events {
		if ev.Period <= 0 || !match(ev) {
			continue
		}
		key := quarterKey(ev.Period)
		line, ok := buckets[key]
		if !ok {
			line = &StatLine{}
			buckets[key] = line
		}
		line.record(ev)
	}

	return buckets
}
