package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// TeamRepository handles team data access
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

const teamColumns = `team_id, external_id, abbreviation, full_name, city,
	conference, division, is_active, created_at, updated_at`

// GetAll returns all active teams
func (r *TeamRepository) GetAll(ctx context.Context) ([]*store.Team, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM teams
		WHERE is_active = true
		ORDER BY full_name
	`, teamColumns)

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	return r.scanTeams(rows)
}

// GetByID finds a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, teamID int) (*store.Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE team_id = $1`, teamColumns)

	team := &store.Team{}
	err := r.db.DB().QueryRowContext(ctx, query, teamID).Scan(
		&team.TeamID, &team.ExternalID, &team.Abbreviation, &team.FullName, &team.City,
		&team.Conference, &team.Division, &team.IsActive,
		&team.CreatedAt, &team.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team %d: %w", teamID, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// GetByAbbreviation finds a team by its abbreviation (e.g. "LAL")
func (r *TeamRepository) GetByAbbreviation(ctx context.Context, abbr string) (*store.Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE abbreviation = $1`, teamColumns)

	team := &store.Team{}
	err := r.db.DB().QueryRowContext(ctx, query, abbr).Scan(
		&team.TeamID, &team.ExternalID, &team.Abbreviation, &team.FullName, &team.City,
		&team.Conference, &team.Division, &team.IsActive,
		&team.CreatedAt, &team.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team %s: %w", abbr, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// scanTeams scans multiple team rows
func (r *TeamRepository) scanTeams(rows *sql.Rows) ([]*store.Team, error) {
	var teams []*store.Team
	for rows.Next() {
		team := &store.Team{}
		err := rows.Scan(
			&team.TeamID, &team.ExternalID, &team.Abbreviation, &team.FullName, &team.City,
			&team.Conference, &team.Division, &team.IsActive,
			&team.CreatedAt, &team.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}
