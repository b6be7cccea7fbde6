package pbp

import (
	"database/sql"

	"github.com/fortuna/courtside/internal/store"
)

// Team and player ids shared by the fixtures.
const (
	homeTeam = 10
	awayTeam = 20

	playerA = 101
	playerB = 102
	playerC = 103
	playerD = 104
	playerE = 201
)

// gameBuilder assembles an ordered event log. Events must be appended in
// chronological order; the builder numbers them as they arrive.
type gameBuilder struct {
	game   *store.Game
	events []*store.PlayByPlayEvent
	seq    int
}

func newGame() *gameBuilder {
	return &gameBuilder{
		game: &store.Game{
			GameID:     1,
			HomeTeamID: homeTeam,
			AwayTeamID: awayTeam,
			Status:     store.GameStatusFinal,
		},
	}
}

func (b *gameBuilder) add(period int, clock, eventType, subtype string, teamID, playerID int) *store.PlayByPlayEvent {
	b.seq++
	ev := &store.PlayByPlayEvent{
		EventID:     b.seq,
		GameID:      b.game.GameID,
		EventNumber: b.seq,
		Period:      period,
		Clock:       clock,
		EventType:   eventType,
		Attributes:  map[string]any{},
	}
	if subtype != "" {
		ev.EventSubtype = sql.NullString{String: subtype, Valid: true}
	}
	if teamID != 0 {
		ev.TeamID = sql.NullInt32{Int32: int32(teamID), Valid: true}
	}
	if playerID != 0 {
		ev.PlayerID = sql.NullInt32{Int32: int32(playerID), Valid: true}
	}
	b.events = append(b.events, ev)
	return ev
}

func (b *gameBuilder) shot(period int, clock string, teamID, playerID int, made bool) *store.PlayByPlayEvent {
	ev := b.add(period, clock, store.EventShot, "2PT", teamID, playerID)
	ev.Success = sql.NullBool{Bool: made, Valid: true}
	return ev
}

func (b *gameBuilder) three(period int, clock string, teamID, playerID int, made bool) *store.PlayByPlayEvent {
	ev := b.add(period, clock, store.EventShot, "3PT", teamID, playerID)
	ev.Success = sql.NullBool{Bool: made, Valid: true}
	return ev
}

func (b *gameBuilder) freeThrow(period int, clock string, teamID, playerID int, made bool) *store.PlayByPlayEvent {
	ev := b.add(period, clock, store.EventFreeThrow, "", teamID, playerID)
	ev.Success = sql.NullBool{Bool: made, Valid: true}
	return ev
}

func (b *gameBuilder) subOut(period int, clock string, teamID, playerID int) *store.PlayByPlayEvent {
	return b.add(period, clock, store.EventSubstitution, store.SubOut, teamID, playerID)
}

func (b *gameBuilder) subIn(period int, clock string, teamID, playerID int) *store.PlayByPlayEvent {
	return b.add(period, clock, store.EventSubstitution, store.SubIn, teamID, playerID)
}

// tiedThroughThree scores five twos a side in Q1 so the game enters the
// fourth quarter tied 10-10.
func (b *gameBuilder) tiedThroughThree() {
	clocks := []string{"11:00", "10:00", "9:00", "8:00", "7:00"}
	for _, c := range clocks {
		b.shot(1, c, homeTeam, playerA, true)
	}
	for _, c := range []string{"6:00", "5:00", "4:00", "3:00", "2:00"} {
		b.shot(1, c, awayTeam, playerE, true)
	}
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

// eventNumbers projects a result set onto builder sequence numbers for
// compact comparisons.
func eventNumbers(events []*store.PlayByPlayEvent) []int {
	nums := make([]int, 0, len(events))
	for _, ev := range events {
		nums = append(nums, ev.EventNumber)
	}
	return nums
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func statsRow(playerID, teamID int, starter bool) *store.PlayerGameStats {
	return &store.PlayerGameStats{
		GameID:   1,
		PlayerID: playerID,
		TeamID:   teamID,
		Starter:  starter,
	}
}
