package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// GameRepository handles game data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `game_id, season_id, external_id, game_date,
	home_team_id, away_team_id, home_score, away_score, status,
	created_at, updated_at`

// GetByID finds a game by its database ID
func (r *GameRepository) GetByID(ctx context.Context, gameID int) (*store.Game, error) {
	query := fmt.Sprintf(`SELECT %s FROM games WHERE game_id = $1`, gameColumns)

	game := &store.Game{}
	err := r.db.DB().QueryRowContext(ctx, query, gameID).Scan(
		&game.GameID, &game.SeasonID, &game.ExternalID, &game.GameDate,
		&game.HomeTeamID, &game.AwayTeamID, &game.HomeScore, &game.AwayScore, &game.Status,
		&game.CreatedAt, &game.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game %d: %w", gameID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// GetLiveGames returns all currently in-progress games
func (r *GameRepository) GetLiveGames(ctx context.Context) ([]*store.Game, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM games
		WHERE status = 'in_progress'
		ORDER BY updated_at DESC
	`, gameColumns)

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying live games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// GetBySeason returns all games in a season in chronological order
func (r *GameRepository) GetBySeason(ctx context.Context, seasonID int) ([]*store.Game, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM games
		WHERE season_id = $1
		ORDER BY game_date, game_id
	`, gameColumns)

	rows, err := r.db.DB().QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, fmt.Errorf("querying season games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// GetFinalBySeason returns completed games in a season, oldest first.
// When teamID > 0, only that team's games are returned.
func (r *GameRepository) GetFinalBySeason(ctx context.Context, seasonID, teamID int) ([]*store.Game, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM games
		WHERE season_id = $1 AND status = 'final'
			AND ($2 = 0 OR home_team_id = $2 OR away_team_id = $2)
		ORDER BY game_date, game_id
	`, gameColumns)

	rows, err := r.db.DB().QueryContext(ctx, query, seasonID, teamID)
	if err != nil {
		return nil, fmt.Errorf("querying final season games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// Upsert inserts or updates a game (used by the external ingestion layer)
func (r *GameRepository) Upsert(ctx context.Context, game *store.Game) error {
	query := `
		INSERT INTO games (season_id, external_id, game_date,
			home_team_id, away_team_id, home_score, away_score, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (external_id) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			home_team_id = EXCLUDED.home_team_id,
			away_team_id = EXCLUDED.away_team_id,
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING game_id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		game.SeasonID, game.ExternalID, game.GameDate,
		game.HomeTeamID, game.AwayTeamID, game.HomeScore, game.AwayScore, game.Status,
	).Scan(&game.GameID)

	if err != nil {
		return fmt.Errorf("upserting game: %w", err)
	}

	return nil
}

// scanGames scans multiple game rows
func (r *GameRepository) scanGames(rows *sql.Rows) ([]*store.Game, error) {
	var games []*store.Game
	for rows.Next() {
		game := &store.Game{}
		err := rows.Scan(
			&game.GameID, &game.SeasonID, &game.ExternalID, &game.GameDate,
			&game.HomeTeamID, &game.AwayTeamID, &game.HomeScore, &game.AwayScore, &game.Status,
			&game.CreatedAt, &game.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
