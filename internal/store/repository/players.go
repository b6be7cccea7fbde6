package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `player_id, external_id, full_name, position, status, created_at, updated_at`

// GetByID finds a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, playerID int) (*store.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE player_id = $1`, playerColumns)

	player := &store.Player{}
	err := r.db.DB().QueryRowContext(ctx, query, playerID).Scan(
		&player.PlayerID, &player.ExternalID, &player.FullName, &player.Position, &player.Status,
		&player.CreatedAt, &player.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player %d: %w", playerID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return player, nil
}

// GetByName searches for players by name (case-insensitive partial match)
func (r *PlayerRepository) GetByName(ctx context.Context, name string) ([]*store.Player, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM players
		WHERE full_name ILIKE $1
		ORDER BY full_name
		LIMIT 50
	`, playerColumns)

	rows, err := r.db.DB().QueryContext(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	return r.scanPlayers(rows)
}

// GetCurrentTeamID returns the player's most recent team from
// player_team_history
func (r *PlayerRepository) GetCurrentTeamID(ctx context.Context, playerID int) (int, error) {
	query := `
		SELECT team_id FROM player_team_history
		WHERE player_id = $1
		ORDER BY start_date DESC
		LIMIT 1
	`

	var teamID int
	err := r.db.DB().QueryRowContext(ctx, query, playerID).Scan(&teamID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("team history for player %d: %w", playerID, store.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("querying team history: %w", err)
	}

	return teamID, nil
}

// Upsert inserts or updates a player (used by the external ingestion layer)
func (r *PlayerRepository) Upsert(ctx context.Context, player *store.Player) error {
	query := `
		INSERT INTO players (external_id, full_name, position, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (external_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			position = EXCLUDED.position,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING player_id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		player.ExternalID, player.FullName, player.Position, player.Status,
	).Scan(&player.PlayerID)

	if err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}

	return nil
}

// scanPlayers scans multiple player rows
func (r *PlayerRepository) scanPlayers(rows *sql.Rows) ([]*store.Player, error) {
	var players []*store.Player
	for rows.Next() {
		player := &store.Player{}
		err := rows.Scan(
			&player.PlayerID, &player.ExternalID, &player.FullName, &player.Position, &player.Status,
			&player.CreatedAt, &player.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}
