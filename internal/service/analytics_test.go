package service

import (
	"database/sql"
	"testing"

	"github.com/fortuna/courtside/internal/pbp"
	"github.com/fortuna/courtside/internal/store"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name      string
		seasonAvg float64
		recentAvg float64
		want      string
	}{
		{"clearly up", 20.0, 25.0, TrendImproving},
		{"clearly down", 20.0, 15.0, TrendDeclining},
		{"exactly baseline", 20.0, 20.0, TrendStable},
		{"just inside the band", 20.0, 20.9, TrendStable},
		{"at the improving edge", 20.0, 21.0, TrendImproving},
		{"at the declining edge", 20.0, 19.0, TrendDeclining},
		{"zero baseline, scoring now", 0, 5.0, TrendImproving},
		{"zero baseline, still zero", 0, 0, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyTrend(tt.seasonAvg, tt.recentAvg); got != tt.want {
				t.Errorf("classifyTrend(%v, %v) = %q, want %q", tt.seasonAvg, tt.recentAvg, got, tt.want)
			}
		})
	}
}

func TestMeanInts(t *testing.T) {
	if got := meanInts(nil); got != 0 {
		t.Errorf("meanInts(nil) = %v, want 0", got)
	}
	if got := meanInts([]int{10, 20, 30}); got != 20.0 {
		t.Errorf("meanInts = %v, want 20", got)
	}
	if got := meanInts([]int{1, 2}); got != 1.5 {
		t.Errorf("meanInts = %v, want 1.5", got)
	}
}

func TestTeamWonStoredScore(t *testing.T) {
	game := &store.Game{
		HomeTeamID: 10,
		AwayTeamID: 20,
		HomeScore:  sql.NullInt32{Int32: 102, Valid: true},
		AwayScore:  sql.NullInt32{Int32: 99, Valid: true},
	}

	if !teamWon(game, nil, 10) {
		t.Error("home team should have won 102-99")
	}
	if teamWon(game, nil, 20) {
		t.Error("away team should have lost 102-99")
	}
}

func TestTeamWonReplayedScore(t *testing.T) {
	game := &store.Game{HomeTeamID: 10, AwayTeamID: 20}
	events := []*store.PlayByPlayEvent{
		{
			Period:    4,
			Clock:     "1:00",
			EventType: store.EventShot,
			TeamID:    sql.NullInt32{Int32: 20, Valid: true},
			Success:   sql.NullBool{Bool: true, Valid: true},
		},
	}

	if teamWon(game, events, 10) {
		t.Error("home team lost the replayed game 0-2")
	}
	if !teamWon(game, events, 20) {
		t.Error("away team won the replayed game 2-0")
	}
}

func TestRosterTeam(t *testing.T) {
	roster := []*store.PlayerGameStats{
		{PlayerID: 101, TeamID: 10},
		{PlayerID: 201, TeamID: 20},
	}

	if got := rosterTeam(roster, 201); got != 20 {
		t.Errorf("rosterTeam(201) = %d, want 20", got)
	}
	if got := rosterTeam(roster, 999); got != 0 {
		t.Errorf("rosterTeam(999) = %d, want 0", got)
	}
}

func TestPlayerStatValue(t *testing.T) {
	row := &store.PlayerGameStats{
		Points:            31,
		Rebounds:          12,
		Assists:           8,
		Steals:            2,
		Blocks:            1,
		Turnovers:         4,
		FieldGoalsMade:    11,
		ThreePointersMade: 3,
		FreeThrowsMade:    6,
	}

	tests := []struct {
		stat string
		want int
	}{
		{"points", 31},
		{"rebounds", 12},
		{"assists", 8},
		{"turnovers", 4},
		{"field_goals_made", 11},
		{"three_pointers_made", 3},
		{"free_throws_made", 6},
	}
	for _, tt := range tests {
		got, ok := playerStatValue(row, tt.stat)
		if !ok || got != tt.want {
			t.Errorf("playerStatValue(%q) = %d, %v, want %d", tt.stat, got, ok, tt.want)
		}
	}

	if _, ok := playerStatValue(row, "win_shares"); ok {
		t.Error("playerStatValue should reject an unknown stat name")
	}
}

func TestTeamStatValue(t *testing.T) {
	row := &store.TeamGameStats{
		Points:              112,
		Rebounds:            44,
		Assists:             27,
		FieldGoalsAttempted: 88,
	}

	if got, ok := teamStatValue(row, "assists"); !ok || got != 27 {
		t.Errorf("teamStatValue(assists) = %d, %v, want 27", got, ok)
	}
	if got, ok := teamStatValue(row, "field_goals_attempted"); !ok || got != 88 {
		t.Errorf("teamStatValue(field_goals_attempted) = %d, %v, want 88", got, ok)
	}
	if _, ok := teamStatValue(row, "pace"); ok {
		t.Error("teamStatValue should reject an unknown stat name")
	}
}

// Every stat the trend endpoint advertises must resolve for both
// scopes.
func TestTrendStatsResolve(t *testing.T) {
	for stat := range trendStats {
		if _, ok := playerStatValue(&store.PlayerGameStats{}, stat); !ok {
			t.Errorf("player selector missing %q", stat)
		}
		if _, ok := teamStatValue(&store.TeamGameStats{}, stat); !ok {
			t.Errorf("team selector missing %q", stat)
		}
	}
}

// Requests that differ in any clutch filter field must not share a
// cache entry.
func TestSeasonClutchKeyDistinct(t *testing.T) {
	base := pbp.DefaultClutchFilter()

	variants := []pbp.ClutchFilter{base}
	v := base
	v.TimeRemainingSeconds = 120
	variants = append(variants, v)
	v = base
	v.ScoreMargin = 3
	variants = append(variants, v)
	v = base
	v.MinPeriod = 3
	variants = append(variants, v)
	v = base
	v.IncludeOvertime = false
	variants = append(variants, v)

	seen := map[string]int{}
	for i, f := range variants {
		key := seasonClutchKey(7, 0, 10, f)
		if prev, dup := seen[key]; dup {
			t.Errorf("filters %d and %d share cache key %q", prev, i, key)
		}
		seen[key] = i
	}

	if seasonClutchKey(7, 0, 10, base) != seasonClutchKey(7, 0, 10, base) {
		t.Error("identical filters should share a cache key")
	}
	if seasonClutchKey(7, 101, 0, base) == seasonClutchKey(7, 0, 10, base) {
		t.Error("player and team scopes should not share a cache key")
	}
}

func TestAddBucket(t *testing.T) {
	total := pbp.OnOffBucket{}
	addBucket(&total, pbp.OnOffBucket{TeamPts: 10, OppPts: 8, PlusMinus: 2, Minutes: 24})
	addBucket(&total, pbp.OnOffBucket{TeamPts: 6, OppPts: 9, PlusMinus: -3, Minutes: 20})

	want := pbp.OnOffBucket{TeamPts: 16, OppPts: 17, PlusMinus: -1, Minutes: 44}
	if total != want {
		t.Errorf("accumulated bucket = %+v, want %+v", total, want)
	}
}
