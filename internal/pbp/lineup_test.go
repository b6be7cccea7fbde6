package pbp

import (
	"testing"

	"github.com/fortuna/courtside/internal/store"
)

// A starter sits from 6:00 to 3:00; their team scores while they are
// on, the opponent scores while they are off.
func TestPlayerOnOff(t *testing.T) {
	b := newGame()
	b.shot(1, "8:00", homeTeam, playerB, true) // playerA on court
	b.subOut(1, "6:00", homeTeam, playerA)
	b.shot(1, "5:00", awayTeam, playerE, true) // playerA on bench
	b.subIn(1, "3:00", homeTeam, playerA)
	starters := map[int]bool{playerA: true}

	got := PlayerOnOff(b.game, b.events, starters, playerA, homeTeam)

	if got.On.TeamPts != 2 || got.On.OppPts != 0 {
		t.Errorf("on bucket = %+v, want team 2, opp 0", got.On)
	}
	if got.Off.TeamPts != 0 || got.Off.OppPts != 2 {
		t.Errorf("off bucket = %+v, want team 0, opp 2", got.Off)
	}
	if got.On.PlusMinus != 2 || got.Off.PlusMinus != -2 {
		t.Errorf("plus/minus on=%d off=%d", got.On.PlusMinus, got.Off.PlusMinus)
	}
	if got.On.Minutes != 9.0 || got.Off.Minutes != 3.0 {
		t.Errorf("minutes on=%v off=%v, want 9/3", got.On.Minutes, got.Off.Minutes)
	}
}

// A player who never leaves a one-period game owns all twelve minutes.
func TestPlayerOnOffNeverSubbed(t *testing.T) {
	b := newGame()
	b.shot(1, "10:00", homeTeam, playerA, true)
	starters := map[int]bool{playerA: true}

	got := PlayerOnOff(b.game, b.events, starters, playerA, homeTeam)
	if got.On.Minutes != 12.0 || got.Off.Minutes != 0.0 {
		t.Errorf("minutes on=%v off=%v, want 12/0", got.On.Minutes, got.Off.Minutes)
	}
}

// On plus off always covers the whole observed game.
func TestOnOffPartitionCompleteness(t *testing.T) {
	b := newGame()
	b.shot(1, "11:00", homeTeam, playerB, true)
	b.subOut(1, "7:00", homeTeam, playerA)
	b.three(1, "4:00", awayTeam, playerE, true)
	b.subIn(2, "10:00", homeTeam, playerA)
	b.shot(2, "8:00", homeTeam, playerB, true)
	b.freeThrow(2, "2:00", awayTeam, playerE, true)
	starters := map[int]bool{playerA: true, playerB: true}

	got := PlayerOnOff(b.game, b.events, starters, playerA, homeTeam)

	totalMinutes := float64(ObservedGameSeconds(b.events)) / 60.0
	if got.On.Minutes+got.Off.Minutes != totalMinutes {
		t.Errorf("on %v + off %v != observed %v", got.On.Minutes, got.Off.Minutes, totalMinutes)
	}

	final := FinalScore(b.game, b.events)
	if got.On.TeamPts+got.Off.TeamPts != final.Home {
		t.Errorf("team points split %d+%d != %d", got.On.TeamPts, got.Off.TeamPts, final.Home)
	}
	if got.On.OppPts+got.Off.OppPts != final.Away {
		t.Errorf("opp points split %d+%d != %d", got.On.OppPts, got.Off.OppPts, final.Away)
	}
}

// A single-player lineup and the on bucket are the same computation.
func TestSinglePlayerLineupMatchesOnBucket(t *testing.T) {
	b := newGame()
	b.shot(1, "9:00", homeTeam, playerB, true)
	b.subOut(1, "6:00", homeTeam, playerA)
	b.shot(1, "4:00", awayTeam, playerE, true)
	b.subIn(1, "2:00", homeTeam, playerA)
	b.shot(1, "1:00", homeTeam, playerB, true)
	starters := map[int]bool{playerA: true, playerB: true}

	lineup := ComputeLineupStats(b.game, b.events, starters, []int{playerA}, homeTeam)
	onOff := PlayerOnOff(b.game, b.events, starters, playerA, homeTeam)

	if lineup.TeamPts != onOff.On.TeamPts || lineup.OppPts != onOff.On.OppPts ||
		lineup.PlusMinus != onOff.On.PlusMinus || lineup.Minutes != onOff.On.Minutes {
		t.Errorf("lineup %+v != on bucket %+v", lineup, onOff.On)
	}
}

func TestComputeLineupStatsDisjointPlayers(t *testing.T) {
	b := newGame()
	b.subOut(1, "8:00", homeTeam, playerA)
	b.subIn(1, "6:00", homeTeam, playerB)
	starters := map[int]bool{playerA: true}

	got := ComputeLineupStats(b.game, b.events, starters, []int{playerA, playerB}, homeTeam)
	if got.TeamPts != 0 || got.OppPts != 0 || got.Minutes != 0 {
		t.Errorf("disjoint lineup should be all zeros, got %+v", got)
	}
}

func TestBestLineups(t *testing.T) {
	b := newGame()
	// A and B start; B gives way to C at 6:00. Home scores while A+B
	// are out there, the opponent scores after the swap.
	b.shot(1, "9:00", homeTeam, playerA, true)
	b.shot(1, "8:00", homeTeam, playerB, true)
	b.subOut(1, "6:00", homeTeam, playerB)
	b.subIn(1, "6:00", homeTeam, playerC)
	b.three(1, "3:00", awayTeam, playerE, true)

	roster := []*store.PlayerGameStats{
		statsRow(playerA, homeTeam, true),
		statsRow(playerB, homeTeam, true),
		statsRow(playerC, homeTeam, false),
		statsRow(playerE, awayTeam, true),
	}

	got := BestLineups(b.game, b.events, roster, homeTeam, 2, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 pairs, got %d: %+v", len(got), got)
	}

	best := got[0]
	if !sameInts(best.PlayerIDs, []int{playerA, playerB}) {
		t.Errorf("best pair = %v, want [A B]", best.PlayerIDs)
	}
	if best.PlusMinus != 4 || best.Minutes != 6.0 {
		t.Errorf("best pair stats = %+v, want +4 in 6 minutes", best)
	}

	worst := got[len(got)-1]
	if !sameInts(worst.PlayerIDs, []int{playerA, playerC}) {
		t.Errorf("worst pair = %v, want [A C]", worst.PlayerIDs)
	}
	if worst.PlusMinus != -3 {
		t.Errorf("worst pair plus/minus = %d, want -3", worst.PlusMinus)
	}

	// Ordering is plus/minus descending throughout.
	for i := 1; i < len(got); i++ {
		if got[i-1].PlusMinus < got[i].PlusMinus {
			t.Errorf("lineups out of order at %d: %+v", i, got)
		}
	}
}

func TestBestLineupsMinMinutes(t *testing.T) {
	b := newGame()
	b.subOut(1, "11:30", homeTeam, playerB)
	b.subIn(1, "11:30", homeTeam, playerC)

	roster := []*store.PlayerGameStats{
		statsRow(playerA, homeTeam, true),
		statsRow(playerB, homeTeam, true),
		statsRow(playerC, homeTeam, false),
	}

	got := BestLineups(b.game, b.events, roster, homeTeam, 2, 5.0)
	// A+B shared only 30 seconds; only A+C clears five minutes.
	if len(got) != 1 || !sameInts(got[0].PlayerIDs, []int{playerA, playerC}) {
		t.Fatalf("BestLineups = %+v, want only [A C]", got)
	}
}

func TestBestLineupsRosterTooSmall(t *testing.T) {
	b := newGame()
	b.shot(1, "9:00", homeTeam, playerA, true)
	roster := []*store.PlayerGameStats{statsRow(playerA, homeTeam, true)}

	if got := BestLineups(b.game, b.events, roster, homeTeam, 5, 0); got != nil {
		t.Errorf("undersized roster should yield nothing, got %+v", got)
	}
}

// A player with no box-score row never appeared, so neither bucket
// picks up any of the game.
func TestPlayerOnOffDidNotPlay(t *testing.T) {
	b := newGame()
	b.shot(1, "10:00", homeTeam, playerA, true)
	b.shot(1, "7:00", awayTeam, playerE, true)

	got := PlayerOnOff(b.game, b.events, map[int]bool{playerA: true}, playerD, homeTeam)
	want := OnOffStats{PlayerID: playerD}
	if got != want {
		t.Errorf("absent player split = %+v, want all zeros", got)
	}
}
