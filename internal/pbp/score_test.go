package pbp

import "testing"

func TestScoreAtReplay(t *testing.T) {
	b := newGame()
	b.shot(1, "10:00", homeTeam, playerA, true)     // 2-0
	b.three(1, "8:00", awayTeam, playerE, true)     // 2-3
	b.shot(1, "6:00", homeTeam, playerB, false)     // miss, no points
	b.freeThrow(1, "5:00", homeTeam, playerA, true) // 3-3
	b.shot(2, "9:00", awayTeam, playerE, true)      // 3-5

	tests := []struct {
		name          string
		period, clock int
		want          Score
	}{
		{"before any scoring", 1, 719, Score{0, 0}},
		{"after first basket", 1, 540, Score{2, 0}},
		{"at the three exactly", 1, 480, Score{2, 3}},
		{"one second before the three", 1, 481, Score{2, 0}},
		{"end of first", 1, 0, Score{3, 3}},
		{"mid second period", 2, 300, Score{3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreAt(b.game, b.events, tt.period, tt.clock)
			if got != tt.want {
				t.Errorf("ScoreAt(%d, %d) = %+v, want %+v", tt.period, tt.clock, got, tt.want)
			}
		})
	}
}

func TestScoreAtEmptyGame(t *testing.T) {
	b := newGame()
	if got := ScoreAt(b.game, nil, 4, 0); got != (Score{}) {
		t.Errorf("ScoreAt with no events = %+v, want zeros", got)
	}
	if got := ScoreAt(nil, b.events, 1, 0); got != (Score{}) {
		t.Errorf("ScoreAt with nil game = %+v, want zeros", got)
	}
}

// Scores never decrease as the cursor walks forward in game time.
func TestScoreAtMonotonic(t *testing.T) {
	b := newGame()
	b.tiedThroughThree()
	b.three(2, "7:30", homeTeam, playerB, true)
	b.freeThrow(2, "3:15", awayTeam, playerE, true)
	b.shot(3, "1:00", homeTeam, playerA, true)

	prev := Score{}
	for _, period := range []int{1, 2, 3} {
		for sec := PeriodLengthSeconds(period); sec >= 0; sec -= 15 {
			got := ScoreAt(b.game, b.events, period, sec)
			if got.Home < prev.Home || got.Away < prev.Away {
				t.Fatalf("score decreased at period %d, %ds remaining: %+v after %+v", period, sec, got, prev)
			}
			prev = got
		}
	}
}

func TestFinalScore(t *testing.T) {
	b := newGame()
	b.tiedThroughThree()
	b.three(4, "2:00", awayTeam, playerE, true)

	if got := FinalScore(b.game, b.events); got != (Score{10, 13}) {
		t.Errorf("FinalScore = %+v, want {10 13}", got)
	}
}

// The margin entering an event must not count the event itself.
func TestMarginBefore(t *testing.T) {
	b := newGame()
	b.shot(1, "10:00", homeTeam, playerA, true)
	tying := b.shot(1, "8:00", awayTeam, playerE, true)

	if got := MarginBefore(b.game, b.events, tying); got != 2 {
		t.Errorf("MarginBefore(tying shot) = %d, want 2", got)
	}
}

func TestPointValue(t *testing.T) {
	b := newGame()
	made2 := b.shot(1, "10:00", homeTeam, playerA, true)
	made3 := b.three(1, "9:00", homeTeam, playerA, true)
	miss3 := b.three(1, "8:00", homeTeam, playerA, false)
	madeFT := b.freeThrow(1, "7:00", homeTeam, playerA, true)
	rebound := b.add(1, "6:59", "REBOUND", "", awayTeam, playerE)

	tests := []struct {
		name string
		ev   int
		want int
	}{
		{"made two", made2.EventNumber, 2},
		{"made three", made3.EventNumber, 3},
		{"missed three", miss3.EventNumber, 0},
		{"made free throw", madeFT.EventNumber, 1},
		{"rebound", rebound.EventNumber, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointValue(b.events[tt.ev-1]); got != tt.want {
				t.Errorf("PointValue = %d, want %d", got, tt.want)
			}
		})
	}
}
