package service

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

// PlayerService handles player-related business logic
type PlayerService struct {
	playerRepo *repository.PlayerRepository
	statsRepo  *repository.StatsRepository
	teamRepo   *repository.TeamRepository
}

// NewPlayerService creates a new player service
func NewPlayerService(db *store.Database) *PlayerService {
	return &PlayerService{
		playerRepo: repository.NewPlayerRepository(db),
		statsRepo:  repository.NewStatsRepository(db),
		teamRepo:   repository.NewTeamRepository(db),
	}
}

// GetPlayer retrieves a player by ID with team details
func (s *PlayerService) GetPlayer(ctx context.Context, playerID int) (*PlayerProfile, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching player: %w", err)
	}

	// Lookup current team from player_team_history table
	var team *store.Team
	if teamID, err := s.playerRepo.GetCurrentTeamID(ctx, playerID); err == nil {
		team, _ = s.teamRepo.GetByID(ctx, teamID)
	}

	return &PlayerProfile{
		Player: player,
		Team:   team,
	}, nil
}

// SearchPlayers searches for players by name
func (s *PlayerService) SearchPlayers(ctx context.Context, name string) ([]*PlayerProfile, error) {
	players, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}

	profiles := make([]*PlayerProfile, 0, len(players))
	for _, player := range players {
		var team *store.Team
		if teamID, err := s.playerRepo.GetCurrentTeamID(ctx, player.PlayerID); err == nil {
			team, _ = s.teamRepo.GetByID(ctx, teamID)
		}

		profiles = append(profiles, &PlayerProfile{
			Player: player,
			Team:   team,
		})
	}

	return profiles, nil
}

// GetPlayerSeasonStats retrieves a player's per-game stat rows for a season
func (s *PlayerService) GetPlayerSeasonStats(ctx context.Context, playerID, seasonID int) ([]*store.PlayerGameStats, error) {
	stats, err := s.statsRepo.GetPlayerSeasonGameStats(ctx, playerID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("fetching player season stats: %w", err)
	}

	return stats, nil
}

// PlayerProfile contains player details with team information
type PlayerProfile struct {
	Player *store.Player `json:"player"`
	Team   *store.Team   `json:"team,omitempty"`
}
