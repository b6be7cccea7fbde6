package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// StatsRepository handles player and team stats data access
type StatsRepository struct {
	db *store.Database
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *store.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

const playerStatColumns = `stat_id, game_id, player_id, team_id, points, rebounds, assists,
	steals, blocks, turnovers, field_goals_made, field_goals_attempted,
	three_pointers_made, three_pointers_attempted, free_throws_made, free_throws_attempted,
	personal_fouls, minutes_played, plus_minus, starter, created_at, updated_at`

// GetPlayerGameStats returns stats for a player in a specific game
func (r *StatsRepository) GetPlayerGameStats(ctx context.Context, gameID, playerID int) (*store.PlayerGameStats, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM player_game_stats
		WHERE game_id = $1 AND player_id = $2
	`, playerStatColumns)

	stats := &store.PlayerGameStats{}
	err := r.db.DB().QueryRowContext(ctx, query, gameID, playerID).Scan(
		&stats.ID, &stats.GameID, &stats.PlayerID, &stats.TeamID, &stats.Points, &stats.Rebounds,
		&stats.Assists, &stats.Steals, &stats.Blocks, &stats.Turnovers, &stats.FieldGoalsMade,
		&stats.FieldGoalsAttempted, &stats.ThreePointersMade, &stats.ThreePointersAttempted,
		&stats.FreeThrowsMade, &stats.FreeThrowsAttempted, &stats.PersonalFouls,
		&stats.MinutesPlayed, &stats.PlusMinus, &stats.Starter,
		&stats.CreatedAt, &stats.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("stats for game %d, player %d: %w", gameID, playerID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player stats: %w", err)
	}

	return stats, nil
}

// GetGameBoxScore returns all player stats rows for a game. These carry
// the starter flags that seed court-presence reconstruction.
func (r *StatsRepository) GetGameBoxScore(ctx context.Context, gameID int) ([]*store.PlayerGameStats, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM player_game_stats
		WHERE game_id = $1
		ORDER BY starter DESC, minutes_played DESC
	`, playerStatColumns)

	rows, err := r.db.DB().QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying box score: %w", err)
	}
	defer rows.Close()

	return r.scanPlayerStats(rows)
}

// GetPlayerSeasonGameStats returns a player's per-game stat rows for all
// completed games in a season, oldest first.
func (r *StatsRepository) GetPlayerSeasonGameStats(ctx context.Context, playerID, seasonID int) ([]*store.PlayerGameStats, error) {
	query := `
		SELECT pgs.stat_id, pgs.game_id, pgs.player_id, pgs.team_id, pgs.points, pgs.rebounds,
			pgs.assists, pgs.steals, pgs.blocks, pgs.turnovers,
			pgs.field_goals_made, pgs.field_goals_attempted,
			pgs.three_pointers_made, pgs.three_pointers_attempted,
			pgs.free_throws_made, pgs.free_throws_attempted,
			pgs.personal_fouls, pgs.minutes_played, pgs.plus_minus, pgs.starter,
			pgs.created_at, pgs.updated_at
		FROM player_game_stats pgs
		JOIN games g ON pgs.game_id = g.game_id
		WHERE pgs.player_id = $1 AND g.season_id = $2 AND g.status = 'final'
		ORDER BY g.game_date, g.game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("querying player season stats: %w", err)
	}
	defer rows.Close()

	return r.scanPlayerStats(rows)
}

// GetTeamSeasonGameStats returns a team's per-game aggregate rows for all
// completed games in a season, oldest first.
func (r *StatsRepository) GetTeamSeasonGameStats(ctx context.Context, teamID, seasonID int) ([]*store.TeamGameStats, error) {
	query := `
		SELECT tgs.stat_id, tgs.game_id, tgs.team_id, tgs.is_home, tgs.points,
			tgs.field_goals_made, tgs.field_goals_attempted,
			tgs.three_pointers_made, tgs.three_pointers_attempted,
			tgs.free_throws_made, tgs.free_throws_attempted,
			tgs.rebounds, tgs.assists, tgs.steals, tgs.blocks, tgs.turnovers,
			tgs.personal_fouls, tgs.created_at, tgs.updated_at
		FROM team_game_stats tgs
		JOIN games g ON tgs.game_id = g.game_id
		WHERE tgs.team_id = $1 AND g.season_id = $2 AND g.status = 'final'
		ORDER BY g.game_date, g.game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, teamID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("querying team season stats: %w", err)
	}
	defer rows.Close()

	var allStats []*store.TeamGameStats
	for rows.Next() {
		stats := &store.TeamGameStats{}
		err := rows.Scan(
			&stats.ID, &stats.GameID, &stats.TeamID, &stats.IsHome, &stats.Points,
			&stats.FieldGoalsMade, &stats.FieldGoalsAttempted,
			&stats.ThreePointersMade, &stats.ThreePointersAttempted,
			&stats.FreeThrowsMade, &stats.FreeThrowsAttempted,
			&stats.Rebounds, &stats.Assists, &stats.Steals, &stats.Blocks, &stats.Turnovers,
			&stats.PersonalFouls, &stats.CreatedAt, &stats.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team stats: %w", err)
		}
		allStats = append(allStats, stats)
	}

	return allStats, rows.Err()
}

// SeasonShooting holds stored aggregate shooting totals for a scope.
type SeasonShooting struct {
	FieldGoalsMade      int `json:"field_goals_made"`
	FieldGoalsAttempted int `json:"field_goals_attempted"`
}

// GetSeasonShooting sums stored field-goal totals for a season scope.
// Either playerID or teamID may be zero; a zero id widens the scope.
func (r *StatsRepository) GetSeasonShooting(ctx context.Context, seasonID, teamID, playerID int) (*SeasonShooting, error) {
	query := `
		SELECT COALESCE(SUM(pgs.field_goals_made), 0),
			COALESCE(SUM(pgs.field_goals_attempted), 0)
		FROM player_game_stats pgs
		JOIN games g ON pgs.game_id = g.game_id
		WHERE g.season_id = $1 AND g.status = 'final'
			AND ($2 = 0 OR pgs.team_id = $2)
			AND ($3 = 0 OR pgs.player_id = $3)
	`

	shooting := &SeasonShooting{}
	err := r.db.DB().QueryRowContext(ctx, query, seasonID, teamID, playerID).Scan(
		&shooting.FieldGoalsMade, &shooting.FieldGoalsAttempted,
	)
	if err != nil {
		return nil, fmt.Errorf("querying season shooting: %w", err)
	}

	return shooting, nil
}

// UpsertPlayerStats inserts or updates player game stats (ingestion boundary)
func (r *StatsRepository) UpsertPlayerStats(ctx context.Context, stats *store.PlayerGameStats) error {
	query := `
		INSERT INTO player_game_stats (game_id, player_id, team_id, points, rebounds, assists,
			steals, blocks, turnovers, field_goals_made, field_goals_attempted,
			three_pointers_made, three_pointers_attempted, free_throws_made, free_throws_attempted,
			personal_fouls, minutes_played, plus_minus, starter)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (game_id, player_id) DO UPDATE SET
			team_id = EXCLUDED.team_id,
			points = EXCLUDED.points,
			rebounds = EXCLUDED.rebounds,
			assists = EXCLUDED.assists,
			steals = EXCLUDED.steals,
			blocks = EXCLUDED.blocks,
			turnovers = EXCLUDED.turnovers,
			field_goals_made = EXCLUDED.field_goals_made,
			field_goals_attempted = EXCLUDED.field_goals_attempted,
			three_pointers_made = EXCLUDED.three_pointers_made,
			three_pointers_attempted = EXCLUDED.three_pointers_attempted,
			free_throws_made = EXCLUDED.free_throws_made,
			free_throws_attempted = EXCLUDED.free_throws_attempted,
			personal_fouls = EXCLUDED.personal_fouls,
			minutes_played = EXCLUDED.minutes_played,
			plus_minus = EXCLUDED.plus_minus,
			starter = EXCLUDED.starter,
			updated_at = NOW()
		RETURNING stat_id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		stats.GameID, stats.PlayerID, stats.TeamID, stats.Points, stats.Rebounds, stats.Assists,
		stats.Steals, stats.Blocks, stats.Turnovers, stats.FieldGoalsMade, stats.FieldGoalsAttempted,
		stats.ThreePointersMade, stats.ThreePointersAttempted, stats.FreeThrowsMade, stats.FreeThrowsAttempted,
		stats.PersonalFouls, stats.MinutesPlayed, stats.PlusMinus, stats.Starter,
	).Scan(&stats.ID)

	if err != nil {
		return fmt.Errorf("upserting player stats: %w", err)
	}

	return nil
}

// scanPlayerStats scans multiple player stats rows
func (r *StatsRepository) scanPlayerStats(rows *sql.Rows) ([]*store.PlayerGameStats, error) {
	var allStats []*store.PlayerGameStats
	for rows.Next() {
		stats := &store.PlayerGameStats{}
		err := rows.Scan(
			&stats.ID, &stats.GameID, &stats.PlayerID, &stats.TeamID, &stats.Points, &stats.Rebounds,
			&stats.Assists, &stats.Steals, &stats.Blocks, &stats.Turnovers, &stats.FieldGoalsMade,
			&stats.FieldGoalsAttempted, &stats.ThreePointersMade, &stats.ThreePointersAttempted,
			&stats.FreeThrowsMade, &stats.FreeThrowsAttempted, &stats.PersonalFouls,
			&stats.MinutesPlayed, &stats.PlusMinus, &stats.Starter,
			&stats.CreatedAt, &stats.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player stats: %w", err)
		}
		allStats = append(allStats, stats)
	}

	return allStats, rows.Err()
}
