package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/pbp"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

// Trend directions returned by GetPerformanceTrend.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// ErrScopeRequired is returned by season aggregations that need exactly
// one of a player or a team scope.
var ErrScopeRequired = errors.New("exactly one of player or team scope required")

// trendWindow is the default number of recent games compared against the
// season baseline.
const trendWindow = 10

// trendThreshold is the relative deviation from the season baseline that
// separates improving/declining from stable.
const trendThreshold = 0.05

// seasonCacheTTL bounds staleness of cached season-wide scans.
const seasonCacheTTL = 10 * time.Minute

// AnalyticsService derives scores, clutch splits, lineup plus/minus and
// performance trends from stored play-by-play. Unknown games, seasons
// and players yield zero-valued results rather than errors.
type AnalyticsService struct {
	gameRepo  *repository.GameRepository
	playRepo  *repository.PlayRepository
	statsRepo *repository.StatsRepository
	cache     *cache.RedisCache
}

// NewAnalyticsService creates a new analytics service. The cache is
// optional; season-wide results are recomputed on every call without it.
func NewAnalyticsService(db *store.Database, c *cache.RedisCache) *AnalyticsService {
	return &AnalyticsService{
		gameRepo:  repository.NewGameRepository(db),
		playRepo:  repository.NewPlayRepository(db),
		statsRepo: repository.NewStatsRepository(db),
		cache:     c,
	}
}

// GameScore is the reconstructed score at a game cursor.
type GameScore struct {
	GameID        int `json:"game_id"`
	Period        int `json:"period"`
	TimeRemaining int `json:"time_remaining"`
	Home          int `json:"home"`
	Away          int `json:"away"`
	Margin        int `json:"margin"`
}

// GetScoreAt replays the event log up to (period, timeRemaining)
func (s *AnalyticsService) GetScoreAt(ctx context.Context, gameID, period, timeRemaining int) (*GameScore, error) {
	game, events, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	score := pbp.ScoreAt(game, events, period, timeRemaining)
	return &GameScore{
		GameID:        gameID,
		Period:        period,
		TimeRemaining: timeRemaining,
		Home:          score.Home,
		Away:          score.Away,
		Margin:        score.Margin(),
	}, nil
}

// GetClutchEvents returns the events inside the clutch window of a game
func (s *AnalyticsService) GetClutchEvents(ctx context.Context, gameID int, f pbp.ClutchFilter) ([]*store.PlayByPlayEvent, error) {
	game, events, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return pbp.ClutchEvents(game, events, f), nil
}

// GetEventsByTime filters a game's events by period and clock bounds.
// Filter validation errors surface to the caller.
func (s *AnalyticsService) GetEventsByTime(ctx context.Context, gameID int, f pbp.TimeFilter) ([]*store.PlayByPlayEvent, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	game, events, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return pbp.EventsByTime(game, events, f)
}

// GetSituationalStats aggregates shots matching attribute tags into a
// make/attempt split
func (s *AnalyticsService) GetSituationalStats(ctx context.Context, gameID int, f pbp.SituationalFilter, scope pbp.ShotScope) (pbp.ShotSplit, error) {
	_, events, err := s.loadGame(ctx, gameID)
	if err != nil {
		return pbp.ShotSplit{}, err
	}

	return pbp.SituationalStats(events, f, scope), nil
}

// GetPlayerStatsByQuarter breaks one player's game down per quarter
func (s *AnalyticsService) GetPlayerStatsByQuarter(ctx context.Context, gameID, playerID int) (map[string]*pbp.StatLine, error) {
	_, events, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return pbp.PlayerStatsByQuarter(events, playerID), nil
}

// GetTeamStatsByQuarter breaks a team's game down per quarter
func (s *AnalyticsService) GetTeamStatsByQuarter(ctx context.Context, gameID, teamID int) (map[string]*pbp.StatLine, error) {
	_, events, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return pbp.TeamStatsByQuarter(events, teamID), nil
}

// GetLineupStats computes plus/minus for a specific set of teammates in
// one game
func (s *AnalyticsService) GetLineupStats(ctx context.Context, gameID, teamID int, playerIDs []int) (pbp.LineupStats, error) {
	game, events, err := s.loadGame(ctx, gameID)
	if err != nil {
		return pbp.LineupStats{PlayerIDs: playerIDs}, err
	}

	roster, err := s.statsRepo.GetGameBoxScore(ctx, gameID)
	if err != nil {
		return pbp.LineupStats{PlayerIDs: playerIDs}, fmt.Errorf("fetching box score: %w", err)
	}

	return pbp.ComputeLineupStats(game, events, pbp.StarterMap(roster), playerIDs, teamID), nil
}

// GetBestLineups ranks every lineup combination of a team in one game by
// plus/minus
func (s *AnalyticsService) GetBestLineups(ctx context.Context, gameID, teamID, lineupSize int, minMinutes float64) ([]pbp.LineupStats, error) {
	game, events, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	roster, err := s.statsRepo.GetGameBoxScore(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching box score: %w", err)
	}

	return pbp.BestLineups(game, events, roster, teamID, lineupSize, minMinutes), nil
}

// GetPlayerOnOffStats splits a game into the player's on-court and
// off-court buckets. When teamID is zero it is resolved from the box
// score. A player with no box-score row did not appear in the game and
// comes back all zeros.
func (s *AnalyticsService) GetPlayerOnOffStats(ctx context.Context, gameID, playerID, teamID int) (pbp.OnOffStats, error) {
	game, events, err := s.loadGame(ctx, gameID)
	if err != nil {
		return pbp.OnOffStats{PlayerID: playerID}, err
	}

	roster, err := s.statsRepo.GetGameBoxScore(ctx, gameID)
	if err != nil {
		return pbp.OnOffStats{PlayerID: playerID}, fmt.Errorf("fetching box score: %w", err)
	}

	playedFor := rosterTeam(roster, playerID)
	if playedFor == 0 {
		return pbp.OnOffStats{PlayerID: playerID}, nil
	}
	if teamID == 0 {
		teamID = playedFor
	}

	return pbp.PlayerOnOff(game, events, pbp.StarterMap(roster), playerID, teamID), nil
}

// SeasonClutchStats summarizes a season inside the clutch window for a
// team or a player.
type SeasonClutchStats struct {
	SeasonID        int           `json:"season_id"`
	PlayerID        int           `json:"player_id,omitempty"`
	TeamID          int           `json:"team_id,omitempty"`
	GamesPlayed     int           `json:"games_played"`
	GamesWithClutch int           `json:"games_with_clutch"`
	ClutchWins      int           `json:"clutch_wins"`
	ClutchLosses    int           `json:"clutch_losses"`
	ClutchShooting  pbp.ShotSplit `json:"clutch_shooting"`
	OverallShooting pbp.ShotSplit `json:"overall_shooting"`
}

// seasonClutchKey encodes every clutch filter field so differently
// shaped windows never share a cache entry.
func seasonClutchKey(seasonID, playerID, teamID int, f pbp.ClutchFilter) string {
	return fmt.Sprintf("analytics:clutch:%d:%d:%d:%d:%d:%d:%t",
		seasonID, playerID, teamID,
		f.TimeRemainingSeconds, f.ScoreMargin, f.MinPeriod, f.IncludeOvertime)
}

// GetClutchStatsForSeason replays every completed game of a season and
// aggregates clutch-window shooting and outcomes for a team or a
// player. Exactly one scope must be set. Overall shooting comes from
// the stored box-score aggregates for comparison; a player's wins and
// losses are scored for the side they appeared on each game.
func (s *AnalyticsService) GetClutchStatsForSeason(ctx context.Context, seasonID, playerID, teamID int, f pbp.ClutchFilter) (*SeasonClutchStats, error) {
	if (playerID == 0) == (teamID == 0) {
		return nil, ErrScopeRequired
	}

	key := seasonClutchKey(seasonID, playerID, teamID, f)
	out := &SeasonClutchStats{SeasonID: seasonID, PlayerID: playerID, TeamID: teamID}
	if s.cached(ctx, key, out) {
		return out, nil
	}

	type seasonGame struct {
		game *store.Game
		side int
	}
	var slate []seasonGame
	if playerID != 0 {
		rows, err := s.statsRepo.GetPlayerSeasonGameStats(ctx, playerID, seasonID)
		if err != nil {
			return nil, fmt.Errorf("fetching player season stats: %w", err)
		}
		for _, row := range rows {
			game, err := s.gameRepo.GetByID(ctx, row.GameID)
			if err != nil {
				return nil, fmt.Errorf("fetching game %d: %w", row.GameID, err)
			}
			slate = append(slate, seasonGame{game: game, side: row.TeamID})
		}
	} else {
		games, err := s.gameRepo.GetFinalBySeason(ctx, seasonID, teamID)
		if err != nil {
			return nil, fmt.Errorf("fetching season games: %w", err)
		}
		for _, game := range games {
			slate = append(slate, seasonGame{game: game, side: teamID})
		}
	}

	scope := pbp.ShotScope{PlayerID: playerID, TeamID: teamID}
	for _, entry := range slate {
		events, err := s.playRepo.GetGameEvents(ctx, entry.game.GameID)
		if err != nil {
			return nil, fmt.Errorf("fetching events for game %d: %w", entry.game.GameID, err)
		}

		out.GamesPlayed++

		clutch := pbp.ClutchEvents(entry.game, events, f)
		if len(clutch) == 0 {
			continue
		}
		out.GamesWithClutch++
		out.ClutchShooting.Add(pbp.SituationalStats(clutch, pbp.SituationalFilter{}, scope))

		if teamWon(entry.game, events, entry.side) {
			out.ClutchWins++
		} else {
			out.ClutchLosses++
		}
	}

	shooting, err := s.statsRepo.GetSeasonShooting(ctx, seasonID, teamID, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching season shooting: %w", err)
	}
	out.OverallShooting.Add(pbp.ShotSplit{Made: shooting.FieldGoalsMade, Attempted: shooting.FieldGoalsAttempted})

	s.remember(ctx, key, out)
	return out, nil
}

// SeasonLineupStats is a lineup's plus/minus accumulated over a season.
type SeasonLineupStats struct {
	SeasonID int             `json:"season_id"`
	TeamID   int             `json:"team_id"`
	Games    int             `json:"games"`
	Lineup   pbp.LineupStats `json:"lineup"`
}

// GetLineupStatsForSeason accumulates a lineup's plus/minus and minutes
// over every completed game of a team's season
func (s *AnalyticsService) GetLineupStatsForSeason(ctx context.Context, seasonID, teamID int, playerIDs []int) (*SeasonLineupStats, error) {
	games, err := s.gameRepo.GetFinalBySeason(ctx, seasonID, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetching season games: %w", err)
	}

	out := &SeasonLineupStats{
		SeasonID: seasonID,
		TeamID:   teamID,
		Lineup:   pbp.LineupStats{PlayerIDs: playerIDs},
	}

	for _, game := range games {
		events, err := s.playRepo.GetGameEvents(ctx, game.GameID)
		if err != nil {
			return nil, fmt.Errorf("fetching events for game %d: %w", game.GameID, err)
		}
		roster, err := s.statsRepo.GetGameBoxScore(ctx, game.GameID)
		if err != nil {
			return nil, fmt.Errorf("fetching box score for game %d: %w", game.GameID, err)
		}

		out.Games++
		out.Lineup.Add(pbp.ComputeLineupStats(game, events, pbp.StarterMap(roster), playerIDs, teamID))
	}

	return out, nil
}

// SeasonOnOffStats accumulates a player's on/off split over a season.
type SeasonOnOffStats struct {
	SeasonID int             `json:"season_id"`
	PlayerID int             `json:"player_id"`
	TeamID   int             `json:"team_id"`
	Games    int             `json:"games"`
	On       pbp.OnOffBucket `json:"on"`
	Off      pbp.OnOffBucket `json:"off"`
}

// GetPlayerOnOffForSeason sums a player's on-court and off-court buckets
// over every completed game they appeared in
func (s *AnalyticsService) GetPlayerOnOffForSeason(ctx context.Context, seasonID, playerID, teamID int) (*SeasonOnOffStats, error) {
	key := fmt.Sprintf("analytics:onoff:%d:%d:%d", seasonID, playerID, teamID)
	out := &SeasonOnOffStats{SeasonID: seasonID, PlayerID: playerID, TeamID: teamID}
	if s.cached(ctx, key, out) {
		return out, nil
	}

	rows, err := s.statsRepo.GetPlayerSeasonGameStats(ctx, playerID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("fetching player season stats: %w", err)
	}

	for _, row := range rows {
		if teamID != 0 && row.TeamID != teamID {
			continue
		}

		split, err := s.GetPlayerOnOffStats(ctx, row.GameID, playerID, row.TeamID)
		if err != nil {
			return nil, err
		}

		out.Games++
		addBucket(&out.On, split.On)
		addBucket(&out.Off, split.Off)
	}

	s.remember(ctx, key, out)
	return out, nil
}

// QuarterSplits holds per-quarter totals over a season with per-game
// scoring averages.
type QuarterSplits struct {
	SeasonID  int                      `json:"season_id"`
	PlayerID  int                      `json:"player_id,omitempty"`
	TeamID    int                      `json:"team_id,omitempty"`
	Games     int                      `json:"games"`
	Totals    map[string]*pbp.StatLine `json:"totals"`
	AvgPoints map[string]float64       `json:"avg_points"`
}

// GetQuarterSplitsForSeason accumulates quarter-by-quarter stat lines
// over a season for a player or a team. Exactly one scope must be set.
// Averages are per game played, not per minute.
func (s *AnalyticsService) GetQuarterSplitsForSeason(ctx context.Context, seasonID, playerID, teamID int) (*QuarterSplits, error) {
	if (playerID == 0) == (teamID == 0) {
		return nil, ErrScopeRequired
	}

	key := fmt.Sprintf("analytics:quarters:%d:%d:%d", seasonID, playerID, teamID)
	out := &QuarterSplits{SeasonID: seasonID, PlayerID: playerID, TeamID: teamID}
	if s.cached(ctx, key, out) {
		return out, nil
	}

	var gameIDs []int
	if playerID != 0 {
		rows, err := s.statsRepo.GetPlayerSeasonGameStats(ctx, playerID, seasonID)
		if err != nil {
			return nil, fmt.Errorf("fetching player season stats: %w", err)
		}
		for _, row := range rows {
			gameIDs = append(gameIDs, row.GameID)
		}
	} else {
		games, err := s.gameRepo.GetFinalBySeason(ctx, seasonID, teamID)
		if err != nil {
			return nil, fmt.Errorf("fetching season games: %w", err)
		}
		for _, game := range games {
			gameIDs = append(gameIDs, game.GameID)
		}
	}

	out.Totals = make(map[string]*pbp.StatLine, len(pbp.QuarterKeys)+1)
	for _, k := range pbp.QuarterKeys {
		out.Totals[k] = &pbp.StatLine{}
	}

	for _, gameID := range gameIDs {
		events, err := s.playRepo.GetGameEvents(ctx, gameID)
		if err != nil {
			return nil, fmt.Errorf("fetching events for game %d: %w", gameID, err)
		}

		var buckets map[string]*pbp.StatLine
		if playerID != 0 {
			buckets = pbp.PlayerStatsByQuarter(events, playerID)
		} else {
			buckets = pbp.TeamStatsByQuarter(events, teamID)
		}

		out.Games++
		for k, line := range buckets {
			total, ok := out.Totals[k]
			if !ok {
				total = &pbp.StatLine{}
				out.Totals[k] = total
			}
			total.Add(line)
		}
	}

	out.AvgPoints = make(map[string]float64, len(out.Totals))
	for k, line := range out.Totals {
		if out.Games > 0 {
			out.AvgPoints[k] = float64(line.Points) / float64(out.Games)
		} else {
			out.AvgPoints[k] = 0
		}
	}

	s.remember(ctx, key, out)
	return out, nil
}

// ErrUnknownStat is returned when a trend request names a stat with no
// per-game column.
var ErrUnknownStat = errors.New("unknown stat")

// trendStats are the per-game columns the trend endpoint recognizes.
var trendStats = map[string]bool{
	"points":                true,
	"rebounds":              true,
	"assists":               true,
	"steals":                true,
	"blocks":                true,
	"turnovers":             true,
	"field_goals_made":      true,
	"field_goals_attempted": true,
	"three_pointers_made":   true,
	"free_throws_made":      true,
}

// PerformanceTrend compares recent form in one stat against the season
// baseline.
type PerformanceTrend struct {
	SeasonID    int     `json:"season_id"`
	PlayerID    int     `json:"player_id,omitempty"`
	TeamID      int     `json:"team_id,omitempty"`
	Stat        string  `json:"stat"`
	GamesPlayed int     `json:"games_played"`
	RecentGames int     `json:"recent_games"`
	Values      []int   `json:"values"`
	SeasonAvg   float64 `json:"season_avg"`
	RecentAvg   float64 `json:"recent_avg"`
	Direction   string  `json:"direction"`
}

// playerStatValue selects a per-game box-score column by stat name.
func playerStatValue(row *store.PlayerGameStats, stat string) (int, bool) {
	switch stat {
	case "points":
		return row.Points, true
	case "rebounds":
		return row.Rebounds, true
	case "assists":
		return row.Assists, true
	case "steals":
		return row.Steals, true
	case "blocks":
		return row.Blocks, true
	case "turnovers":
		return row.Turnovers, true
	case "field_goals_made":
		return row.FieldGoalsMade, true
	case "field_goals_attempted":
		return row.FieldGoalsAttempted, true
	case "three_pointers_made":
		return row.ThreePointersMade, true
	case "free_throws_made":
		return row.FreeThrowsMade, true
	}
	return 0, false
}

// teamStatValue selects a per-game team aggregate column by stat name.
func teamStatValue(row *store.TeamGameStats, stat string) (int, bool) {
	switch stat {
	case "points":
		return row.Points, true
	case "rebounds":
		return row.Rebounds, true
	case "assists":
		return row.Assists, true
	case "steals":
		return row.Steals, true
	case "blocks":
		return row.Blocks, true
	case "turnovers":
		return row.Turnovers, true
	case "field_goals_made":
		return row.FieldGoalsMade, true
	case "field_goals_attempted":
		return row.FieldGoalsAttempted, true
	case "three_pointers_made":
		return row.ThreePointersMade, true
	case "free_throws_made":
		return row.FreeThrowsMade, true
	}
	return 0, false
}

// GetPerformanceTrend classifies recent form in the named stat against
// the season baseline and returns the per-game value series. Exactly
// one of playerID and teamID must be set; an empty statName defaults to
// points; lastN <= 0 falls back to the default window.
func (s *AnalyticsService) GetPerformanceTrend(ctx context.Context, seasonID, playerID, teamID int, statName string, lastN int) (*PerformanceTrend, error) {
	if (playerID == 0) == (teamID == 0) {
		return nil, pbp.ErrNoTrendScope
	}
	if statName == "" {
		statName = "points"
	}
	if !trendStats[statName] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStat, statName)
	}
	if lastN <= 0 {
		lastN = trendWindow
	}

	key := fmt.Sprintf("analytics:trend:%d:%d:%d:%s:%d", seasonID, playerID, teamID, statName, lastN)
	out := &PerformanceTrend{SeasonID: seasonID, PlayerID: playerID, TeamID: teamID, Stat: statName}
	if s.cached(ctx, key, out) {
		return out, nil
	}

	var values []int
	if playerID != 0 {
		rows, err := s.statsRepo.GetPlayerSeasonGameStats(ctx, playerID, seasonID)
		if err != nil {
			return nil, fmt.Errorf("fetching player season stats: %w", err)
		}
		for _, row := range rows {
			v, ok := playerStatValue(row, statName)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownStat, statName)
			}
			values = append(values, v)
		}
	} else {
		rows, err := s.statsRepo.GetTeamSeasonGameStats(ctx, teamID, seasonID)
		if err != nil {
			return nil, fmt.Errorf("fetching team season stats: %w", err)
		}
		for _, row := range rows {
			v, ok := teamStatValue(row, statName)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownStat, statName)
			}
			values = append(values, v)
		}
	}

	out.GamesPlayed = len(values)
	out.Values = values
	if len(values) == 0 {
		out.Direction = TrendStable
		return out, nil
	}

	recent := values
	if len(values) > lastN {
		recent = values[len(values)-lastN:]
	}
	out.RecentGames = len(recent)
	out.SeasonAvg = meanInts(values)
	out.RecentAvg = meanInts(recent)
	out.Direction = classifyTrend(out.SeasonAvg, out.RecentAvg)

	s.remember(ctx, key, out)
	return out, nil
}

// classifyTrend compares a recent average to the season baseline,
// allowing trendThreshold of relative noise either way.
func classifyTrend(seasonAvg, recentAvg float64) string {
	if seasonAvg == 0 {
		if recentAvg > 0 {
			return TrendImproving
		}
		return TrendStable
	}

	switch {
	case recentAvg >= seasonAvg*(1+trendThreshold):
		return TrendImproving
	case recentAvg <= seasonAvg*(1-trendThreshold):
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}

// teamWon resolves a game's outcome for one side, preferring the stored
// final score and falling back to replaying the event log.
func teamWon(game *store.Game, events []*store.PlayByPlayEvent, teamID int) bool {
	home, away := 0, 0
	if game.HomeScore.Valid && game.AwayScore.Valid {
		home, away = int(game.HomeScore.Int32), int(game.AwayScore.Int32)
	} else {
		final := pbp.FinalScore(game, events)
		home, away = final.Home, final.Away
	}

	if teamID == game.HomeTeamID {
		return home > away
	}
	return away > home
}

// rosterTeam finds the team a player appeared for in a box score.
func rosterTeam(roster []*store.PlayerGameStats, playerID int) int {
	for _, row := range roster {
		if row.PlayerID == playerID {
			return row.TeamID
		}
	}
	return 0
}

func addBucket(dst *pbp.OnOffBucket, src pbp.OnOffBucket) {
	dst.TeamPts += src.TeamPts
	dst.OppPts += src.OppPts
	dst.PlusMinus += src.PlusMinus
	dst.Minutes += src.Minutes
}

// loadGame fetches a game and its ordered event log. An unknown game
// comes back as (nil, nil, nil) so analytics degrade to zero values.
func (s *AnalyticsService) loadGame(ctx context.Context, gameID int) (*store.Game, []*store.PlayByPlayEvent, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("fetching game: %w", err)
	}

	events, err := s.playRepo.GetGameEvents(ctx, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching events: %w", err)
	}

	return game, events, nil
}

// cached loads a season-level result from Redis. Any failure is treated
// as a miss.
func (s *AnalyticsService) cached(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.GetJSON(ctx, key, dest) == nil
}

// remember stores a season-level result in Redis.
func (s *AnalyticsService) remember(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, seasonCacheTTL); err != nil {
		log.Printf("caching %s: %v", key, err)
	}
}
