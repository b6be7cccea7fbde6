package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is wrapped by repository lookups that matched no rows.
// Analytics callers treat it as "empty data", not as a failure.
var ErrNotFound = errors.New("not found")

// Season represents a league season
type Season struct {
	SeasonID   int       `json:"season_id" db:"season_id"`
	League     string    `json:"league" db:"league"`
	SeasonYear string    `json:"season_year" db:"season_year"`
	SeasonType string    `json:"season_type" db:"season_type"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Team represents a franchise
type Team struct {
	TeamID       int            `json:"team_id" db:"team_id"`
	ExternalID   string         `json:"external_id" db:"external_id"`
	Abbreviation string         `json:"abbreviation" db:"abbreviation"`
	FullName     string         `json:"full_name" db:"full_name"`
	City         sql.NullString `json:"city,omitempty" db:"city"`
	Conference   sql.NullString `json:"conference,omitempty" db:"conference"`
	Division     sql.NullString `json:"division,omitempty" db:"division"`
	IsActive     bool           `json:"is_active" db:"is_active"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// Player represents a player
type Player struct {
	PlayerID   int            `json:"player_id" db:"player_id"`
	ExternalID sql.NullString `json:"external_id,omitempty" db:"external_id"`
	FullName   string         `json:"full_name" db:"full_name"`
	Position   sql.NullString `json:"position,omitempty" db:"position"`
	Status     sql.NullString `json:"status,omitempty" db:"status"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`

	// Not in database - populated from player_team_history for API responses
	CurrentTeamID int `json:"current_team_id,omitempty" db:"-"`
}

// Game statuses as stored in games.status
const (
	GameStatusScheduled  = "scheduled"
	GameStatusInProgress = "in_progress"
	GameStatusFinal      = "final"
)

// Game represents a single game
type Game struct {
	GameID     int           `json:"game_id" db:"game_id"`
	SeasonID   int           `json:"season_id" db:"season_id"`
	ExternalID string        `json:"external_id" db:"external_id"`
	GameDate   time.Time     `json:"game_date" db:"game_date"`
	HomeTeamID int           `json:"home_team_id" db:"home_team_id"`
	AwayTeamID int           `json:"away_team_id" db:"away_team_id"`
	HomeScore  sql.NullInt32 `json:"home_score,omitempty" db:"home_score"`
	AwayScore  sql.NullInt32 `json:"away_score,omitempty" db:"away_score"`
	Status     string        `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" db:"updated_at"`
}

// Play-by-play event types as produced by the ingestion layer.
const (
	EventShot         = "SHOT"
	EventFreeThrow    = "FREE_THROW"
	EventRebound      = "REBOUND"
	EventAssist       = "ASSIST"
	EventSteal        = "STEAL"
	EventBlock        = "BLOCK"
	EventTurnover     = "TURNOVER"
	EventFoul         = "FOUL"
	EventSubstitution = "SUBSTITUTION"
	EventTimeout      = "TIMEOUT"
	EventJumpBall     = "JUMP_BALL"
	EventViolation    = "VIOLATION"
	EventPeriodStart  = "PERIOD_START"
	EventPeriodEnd    = "PERIOD_END"
)

// Substitution subtypes
const (
	SubIn  = "IN"
	SubOut = "OUT"
)

// PlayByPlayEvent is one discrete in-game event. EventNumber is the
// externally-supplied total order within a game; replays must never
// re-derive ordering from insertion time.
type PlayByPlayEvent struct {
	EventID      int             `json:"event_id" db:"event_id"`
	GameID       int             `json:"game_id" db:"game_id"`
	EventNumber  int             `json:"event_number" db:"event_number"`
	Period       int             `json:"period" db:"period"`
	Clock        string          `json:"clock" db:"clock"`
	EventType    string          `json:"event_type" db:"event_type"`
	EventSubtype sql.NullString  `json:"event_subtype,omitempty" db:"event_subtype"`
	PlayerID     sql.NullInt32   `json:"player_id,omitempty" db:"player_id"`
	TeamID       sql.NullInt32   `json:"team_id,omitempty" db:"team_id"`
	Success      sql.NullBool    `json:"success,omitempty" db:"success"`
	CoordX       sql.NullFloat64 `json:"coord_x,omitempty" db:"coord_x"`
	CoordY       sql.NullFloat64 `json:"coord_y,omitempty" db:"coord_y"`
	Attributes   map[string]any  `json:"attributes" db:"-"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// Subtype returns the event subtype or "" when unset.
func (e *PlayByPlayEvent) Subtype() string {
	if e.EventSubtype.Valid {
		return e.EventSubtype.String
	}
	return ""
}

// ActorIs reports whether the event's primary actor is the given player.
func (e *PlayByPlayEvent) ActorIs(playerID int) bool {
	return e.PlayerID.Valid && int(e.PlayerID.Int32) == playerID
}

// ForTeam reports whether the event belongs to the given team.
func (e *PlayByPlayEvent) ForTeam(teamID int) bool {
	return e.TeamID.Valid && int(e.TeamID.Int32) == teamID
}

// PlayerGameStats represents player stats for a single game. Starter is
// the sole source of a player's on-court state at the opening tip.
type PlayerGameStats struct {
	ID                     int             `json:"id" db:"stat_id"`
	GameID                 int             `json:"game_id" db:"game_id"`
	PlayerID               int             `json:"player_id" db:"player_id"`
	TeamID                 int             `json:"team_id" db:"team_id"`
	Points                 int             `json:"points" db:"points"`
	Rebounds               int             `json:"rebounds" db:"rebounds"`
	Assists                int             `json:"assists" db:"assists"`
	Steals                 int             `json:"steals" db:"steals"`
	Blocks                 int             `json:"blocks" db:"blocks"`
	Turnovers              int             `json:"turnovers" db:"turnovers"`
	FieldGoalsMade         int             `json:"field_goals_made" db:"field_goals_made"`
	FieldGoalsAttempted    int             `json:"field_goals_attempted" db:"field_goals_attempted"`
	ThreePointersMade      int             `json:"three_pointers_made" db:"three_pointers_made"`
	ThreePointersAttempted int             `json:"three_pointers_attempted" db:"three_pointers_attempted"`
	FreeThrowsMade         int             `json:"free_throws_made" db:"free_throws_made"`
	FreeThrowsAttempted    int             `json:"free_throws_attempted" db:"free_throws_attempted"`
	PersonalFouls          int             `json:"personal_fouls" db:"personal_fouls"`
	MinutesPlayed          sql.NullFloat64 `json:"minutes_played,omitempty" db:"minutes_played"`
	PlusMinus              sql.NullInt32   `json:"plus_minus,omitempty" db:"plus_minus"`
	Starter                bool            `json:"starter" db:"starter"`
	CreatedAt              time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at" db:"updated_at"`
}

// TeamGameStats represents team aggregate stats for a single game
type TeamGameStats struct {
	ID                     int       `json:"id" db:"stat_id"`
	GameID                 int       `json:"game_id" db:"game_id"`
	TeamID                 int       `json:"team_id" db:"team_id"`
	IsHome                 bool      `json:"is_home" db:"is_home"`
	Points                 int       `json:"points" db:"points"`
	FieldGoalsMade         int       `json:"field_goals_made" db:"field_goals_made"`
	FieldGoalsAttempted    int       `json:"field_goals_attempted" db:"field_goals_attempted"`
	ThreePointersMade      int       `json:"three_pointers_made" db:"three_pointers_made"`
	ThreePointersAttempted int       `json:"three_pointers_attempted" db:"three_pointers_attempted"`
	FreeThrowsMade         int       `json:"free_throws_made" db:"free_throws_made"`
	FreeThrowsAttempted    int       `json:"free_throws_attempted" db:"free_throws_attempted"`
	Rebounds               int       `json:"rebounds" db:"rebounds"`
	Assists                int       `json:"assists" db:"assists"`
	Steals                 int       `json:"steals" db:"steals"`
	Blocks                 int       `json:"blocks" db:"blocks"`
	Turnovers              int       `json:"turnovers" db:"turnovers"`
	PersonalFouls          int       `json:"personal_fouls" db:"personal_fouls"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time `json:"updated_at" db:"updated_at"`
}
