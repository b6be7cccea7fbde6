package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// PlayRepository handles play-by-play event data access
type PlayRepository struct {
	db *store.Database
}

// NewPlayRepository creates a new play-by-play repository
func NewPlayRepository(db *store.Database) *PlayRepository {
	return &PlayRepository{db: db}
}

// GetGameEvents returns every event for a game ordered by event_number,
// the canonical chronological order. A game with no rows yields an empty
// slice, not an error.
func (r *PlayRepository) GetGameEvents(ctx context.Context, gameID int) ([]*store.PlayByPlayEvent, error) {
	query := `
		SELECT event_id, game_id, event_number, period, clock, event_type,
			event_subtype, player_id, team_id, success, coord_x, coord_y,
			attributes, created_at
		FROM play_by_play
		WHERE game_id = $1
		ORDER BY event_number
	`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying play-by-play: %w", err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// GetPlayerEvents returns a player's events for a game ordered by event_number
func (r *PlayRepository) GetPlayerEvents(ctx context.Context, gameID, playerID int) ([]*store.PlayByPlayEvent, error) {
	query := `
		SELECT event_id, game_id, event_number, period, clock, event_type,
			event_subtype, player_id, team_id, success, coord_x, coord_y,
			attributes, created_at
		FROM play_by_play
		WHERE game_id = $1 AND player_id = $2
		ORDER BY event_number
	`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying player play-by-play: %w", err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// Upsert inserts or updates one event (used by the external ingestion layer)
func (r *PlayRepository) Upsert(ctx context.Context, ev *store.PlayByPlayEvent) error {
	attrs, err := json.Marshal(ev.Attributes)
	if err != nil {
		return fmt.Errorf("encoding event attributes: %w", err)
	}

	query := `
		INSERT INTO play_by_play (game_id, event_number, period, clock, event_type,
			event_subtype, player_id, team_id, success, coord_x, coord_y, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (game_id, event_number) DO UPDATE SET
			period = EXCLUDED.period,
			clock = EXCLUDED.clock,
			event_type = EXCLUDED.event_type,
			event_subtype = EXCLUDED.event_subtype,
			player_id = EXCLUDED.player_id,
			team_id = EXCLUDED.team_id,
			success = EXCLUDED.success,
			coord_x = EXCLUDED.coord_x,
			coord_y = EXCLUDED.coord_y,
			attributes = EXCLUDED.attributes
		RETURNING event_id
	`

	err = r.db.DB().QueryRowContext(ctx, query,
		ev.GameID, ev.EventNumber, ev.Period, ev.Clock, ev.EventType,
		ev.EventSubtype, ev.PlayerID, ev.TeamID, ev.Success, ev.CoordX, ev.CoordY,
		string(attrs),
	).Scan(&ev.EventID)

	if err != nil {
		return fmt.Errorf("upserting play-by-play event: %w", err)
	}

	return nil
}

// scanEvents scans multiple play-by-play rows, decoding the JSONB
// attributes column into the open tag map. A NULL column decodes to an
// empty map so filters never see nil.
func (r *PlayRepository) scanEvents(rows *sql.Rows) ([]*store.PlayByPlayEvent, error) {
	var events []*store.PlayByPlayEvent
	for rows.Next() {
		ev := &store.PlayByPlayEvent{}
		var attrs sql.NullString

		err := rows.Scan(
			&ev.EventID, &ev.GameID, &ev.EventNumber, &ev.Period, &ev.Clock, &ev.EventType,
			&ev.EventSubtype, &ev.PlayerID, &ev.TeamID, &ev.Success, &ev.CoordX, &ev.CoordY,
			&attrs, &ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning play-by-play event: %w", err)
		}

		ev.Attributes = map[string]any{}
		if attrs.Valid && attrs.String != "" {
			if err := json.Unmarshal([]byte(attrs.String), &ev.Attributes); err != nil {
				return nil, fmt.Errorf("decoding event %d attributes: %w", ev.EventID, err)
			}
		}

		events = append(events, ev)
	}

	return events, rows.Err()
}
