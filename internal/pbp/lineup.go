package pbp

import (
	"sort"

	"github.com/fortuna/courtside/internal/store"
)

// LineupStats aggregates scoring while a set of teammates shared the
// floor.
type LineupStats struct {
	PlayerIDs []int   `json:"player_ids"`
	TeamPts   int     `json:"team_pts"`
	OppPts    int     `json:"opp_pts"`
	PlusMinus int     `json:"plus_minus"`
	Minutes   float64 `json:"minutes"`
}

// OnOffBucket is one side of an on/off split.
type OnOffBucket struct {
	TeamPts   int     `json:"team_pts"`
	OppPts    int     `json:"opp_pts"`
	PlusMinus int     `json:"plus_minus"`
	Minutes   float64 `json:"minutes"`
}

// OnOffStats partitions team performance by a player's court presence.
type OnOffStats struct {
	PlayerID int         `json:"player_id"`
	On       OnOffBucket `json:"on"`
	Off      OnOffBucket `json:"off"`
}

// Add folds another game's stats into this one.
func (ls *LineupStats) Add(other LineupStats) {
	ls.TeamPts += other.TeamPts
	ls.OppPts += other.OppPts
	ls.PlusMinus += other.PlusMinus
	ls.Minutes += other.Minutes
}

// scoringEvent is a scoring play pinned to a (period, clock) moment,
// extracted once so lineup enumeration never re-scans the full log.
type scoringEvent struct {
	period  int
	seconds int
	points  int
	forTeam bool
}

// extractScoring pulls every parseable scoring play out of the stream,
// classified relative to teamID.
func extractScoring(events []*store.PlayByPlayEvent, teamID int) []scoringEvent {
	var plays []scoringEvent
	for _, ev := range events {
		pts := PointValue(ev)
		if pts == 0 || !ev.TeamID.Valid {
			continue
		}
		sec, err := ClockToSeconds(ev.Clock)
		if err != nil {
			continue
		}
		plays = append(plays, scoringEvent{
			period:  ev.Period,
			seconds: sec,
			points:  pts,
			forTeam: int(ev.TeamID.Int32) == teamID,
		})
	}
	return plays
}

// tallyIntervals sums team and opponent points for plays strictly inside
// the given intervals.
func tallyIntervals(plays []scoringEvent, intervals []Interval) (teamPts, oppPts int) {
	for _, play := range plays {
		for _, iv := range intervals {
			if iv.Contains(play.period, play.seconds) {
				if play.forTeam {
					teamPts += play.points
				} else {
					oppPts += play.points
				}
				break
			}
		}
	}
	return teamPts, oppPts
}

// ComputeLineupStats computes plus/minus and minutes for a set of
// teammates over their joint on-court intervals. Players who never
// shared the floor produce all zeros.
func ComputeLineupStats(game *store.Game, events []*store.PlayByPlayEvent, starters map[int]bool, playerIDs []int, teamID int) LineupStats {
	stats := LineupStats{PlayerIDs: playerIDs}
	if game == nil || len(playerIDs) == 0 {
		return stats
	}

	intervals := OnCourtIntervals(events, starters, playerIDs)
	if len(intervals) == 0 {
		return stats
	}

	plays := extractScoring(events, teamID)
	stats.TeamPts, stats.OppPts = tallyIntervals(plays, intervals)
	stats.PlusMinus = stats.TeamPts - stats.OppPts
	stats.Minutes = IntervalMinutes(intervals)
	return stats
}

// BestLineups enumerates every lineupSize-combination of the roster,
// scores each over its joint intervals, drops combinations under
// minMinutes, and returns the rest sorted by plus/minus descending.
// Per-player partitions and scoring plays are extracted once and reused
// across all combinations.
func BestLineups(game *store.Game, events []*store.PlayByPlayEvent, roster []*store.PlayerGameStats, teamID, lineupSize int, minMinutes float64) []LineupStats {
	if game == nil || lineupSize <= 0 {
		return nil
	}

	starters := StarterMap(roster)
	var playerIDs []int
	partitions := map[int][]Interval{}
	for _, row := range roster {
		if row.TeamID != teamID {
			continue
		}
		playerIDs = append(playerIDs, row.PlayerID)
		partitions[row.PlayerID] = PlayerIntervals(events, starters, row.PlayerID)
	}
	if len(playerIDs) < lineupSize {
		return nil
	}
	sort.Ints(playerIDs)

	plays := extractScoring(events, teamID)

	var lineups []LineupStats
	combo := make([]int, 0, lineupSize)
	var walk func(start int)
	walk = func(start int) {
		if len(combo) == lineupSize {
			joint := partitions[combo[0]]
			for _, id := range combo[1:] {
				joint = intersectIntervals(joint, partitions[id])
				if len(joint) == 0 {
					break
				}
			}

			minutes := IntervalMinutes(joint)
			if minutes < minMinutes {
				return
			}

			stats := LineupStats{PlayerIDs: append([]int(nil), combo...), Minutes: minutes}
			stats.TeamPts, stats.OppPts = tallyIntervals(plays, joint)
			stats.PlusMinus = stats.TeamPts - stats.OppPts
			lineups = append(lineups, stats)
			return
		}
		for i := start; i < len(playerIDs); i++ {
			combo = append(combo, playerIDs[i])
			walk(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	walk(0)

	sort.SliceStable(lineups, func(i, j int) bool {
		return lineups[i].PlusMinus > lineups[j].PlusMinus
	})
	return lineups
}

// PlayerOnOff splits team performance into on-court and off-court
// buckets for one player. The off bucket is the exact complement of the
// on bucket, so minutes and points partition the observed game. A
// player missing from starters has no box-score row for this game and
// yields all-zero buckets.
func PlayerOnOff(game *store.Game, events []*store.PlayByPlayEvent, starters map[int]bool, playerID, teamID int) OnOffStats {
	stats := OnOffStats{PlayerID: playerID}
	if game == nil {
		return stats
	}
	if _, played := starters[playerID]; !played {
		return stats
	}

	intervals := PlayerIntervals(events, starters, playerID)
	plays := extractScoring(events, teamID)

	onTeam, onOpp := tallyIntervals(plays, intervals)
	var totalTeam, totalOpp int
	for _, play := range plays {
		if play.forTeam {
			totalTeam += play.points
		} else {
			totalOpp += play.points
		}
	}

	onMinutes := IntervalMinutes(intervals)
	totalMinutes := float64(ObservedGameSeconds(events)) / 60.0

	stats.On = OnOffBucket{
		TeamPts:   onTeam,
		OppPts:    onOpp,
		PlusMinus: onTeam - onOpp,
		Minutes:   onMinutes,
	}
	stats.Off = OnOffBucket{
		TeamPts:   totalTeam - onTeam,
		OppPts:    totalOpp - onOpp,
		PlusMinus: (totalTeam - onTeam) - (totalOpp - onOpp),
		Minutes:   totalMinutes - onMinutes,
	}
	return stats
}

// StarterMap extracts the starter flags from box-score rows.
func StarterMap(roster []*store.PlayerGameStats) map[int]bool {
	starters := make(map[int]bool, len(roster))
	for _, row := range roster {
		starters[row.PlayerID] = row.Starter
	}
	return starters
}
