package service

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

// GameService handles game-related business logic
type GameService struct {
	gameRepo *repository.GameRepository
	teamRepo *repository.TeamRepository
}

// NewGameService creates a new game service
func NewGameService(db *store.Database) *GameService {
	return &GameService{
		gameRepo: repository.NewGameRepository(db),
		teamRepo: repository.NewTeamRepository(db),
	}
}

// GetGame retrieves a game by ID with team details
func (s *GameService) GetGame(ctx context.Context, gameID int) (*GameSummary, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game: %w", err)
	}

	homeTeam, err := s.teamRepo.GetByID(ctx, game.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("fetching home team: %w", err)
	}

	awayTeam, err := s.teamRepo.GetByID(ctx, game.AwayTeamID)
	if err != nil {
		return nil, fmt.Errorf("fetching away team: %w", err)
	}

	return &GameSummary{
		Game:     game,
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
	}, nil
}

// GetLiveGames retrieves all currently live games
func (s *GameService) GetLiveGames(ctx context.Context) ([]*GameSummary, error) {
	games, err := s.gameRepo.GetLiveGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching live games: %w", err)
	}

	return s.enrichGamesWithTeams(ctx, games)
}

// GetSeasonGames retrieves all games in a season in chronological order
func (s *GameService) GetSeasonGames(ctx context.Context, seasonID int) ([]*GameSummary, error) {
	games, err := s.gameRepo.GetBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("fetching season games: %w", err)
	}

	return s.enrichGamesWithTeams(ctx, games)
}

// enrichGamesWithTeams adds team details to games
func (s *GameService) enrichGamesWithTeams(ctx context.Context, games []*store.Game) ([]*GameSummary, error) {
	summaries := make([]*GameSummary, 0, len(games))

	for _, game := range games {
		homeTeam, err := s.teamRepo.GetByID(ctx, game.HomeTeamID)
		if err != nil {
			return nil, fmt.Errorf("fetching home team for game %d: %w", game.GameID, err)
		}

		awayTeam, err := s.teamRepo.GetByID(ctx, game.AwayTeamID)
		if err != nil {
			return nil, fmt.Errorf("fetching away team for game %d: %w", game.GameID, err)
		}

		summaries = append(summaries, &GameSummary{
			Game:     game,
			HomeTeam: homeTeam,
			AwayTeam: awayTeam,
		})
	}

	return summaries, nil
}

// GameSummary contains game details with team information
type GameSummary struct {
	Game     *store.Game `json:"game"`
	HomeTeam *store.Team `json:"home_team"`
	AwayTeam *store.Team `json:"away_team"`
}
