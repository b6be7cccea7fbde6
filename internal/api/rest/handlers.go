package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db               *store.Database
	gameService      *service.GameService
	playerService    *service.PlayerService
	statsService     *service.StatsService
	analyticsService *service.AnalyticsService
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, c *cache.RedisCache) *Handler {
	return &Handler{
		db:               db,
		gameService:      service.NewGameService(db),
		playerService:    service.NewPlayerService(db),
		statsService:     service.NewStatsService(db),
		analyticsService: service.NewAnalyticsService(db, c),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "courtside",
		"version": "1.0.0",
	})
}

// GetLiveGames returns all currently live games
func (h *Handler) GetLiveGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.GetLiveGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch live games", err)
		return
	}

	respondJSON(w, http.StatusOK, games)
}

// GetGame returns a specific game by ID
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	game, err := h.gameService.GetGame(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// GetGameBoxScore returns the box score for a game
func (h *Handler) GetGameBoxScore(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	boxScore, err := h.statsService.GetGameBoxScore(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Box score not found", err)
		return
	}

	respondJSON(w, http.StatusOK, boxScore)
}

// GetSeasonGames returns all games in a season
func (h *Handler) GetSeasonGames(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathInt(r, "seasonID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season ID", err)
		return
	}

	games, err := h.gameService.GetSeasonGames(r.Context(), seasonID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch season games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetPlayer returns a player by ID
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathInt(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// SearchPlayers searches for players by name
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'q'", nil)
		return
	}

	profiles, err := h.playerService.SearchPlayers(r.Context(), query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search players", err)
		return
	}

	// Extract just the player data for the response
	players := make([]*store.Player, 0, len(profiles))
	for _, profile := range profiles {
		if profile.Player != nil {
			if profile.Team != nil {
				profile.Player.CurrentTeamID = profile.Team.TeamID
			}
			players = append(players, profile.Player)
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"players": players})
}

// GetPlayerSeasonStats returns a player's per-game stat rows for a season
func (h *Handler) GetPlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathInt(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	seasonID := queryInt(r, "season", 0)
	if seasonID == 0 {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'season'", nil)
		return
	}

	stats, err := h.playerService.GetPlayerSeasonStats(r.Context(), playerID, seasonID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch player stats", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"stats": stats,
		"count": len(stats),
	})
}

// GetTeams returns all teams
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teamRepo := repository.NewTeamRepository(h.db)
	teams, err := teamRepo.GetAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch teams", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

// GetTeam returns a specific team by ID
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathInt(r, "teamID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team ID", err)
		return
	}

	teamRepo := repository.NewTeamRepository(h.db)
	team, err := teamRepo.GetByID(r.Context(), teamID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Team not found", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"team": team})
}

// pathInt parses an integer path variable
func pathInt(r *http.Request, key string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[key])
}

// queryInt parses an integer query parameter, falling back to a default
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	return def
}

// queryIntPtr parses an optional integer query parameter
func queryIntPtr(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryBoolPtr parses an optional boolean query parameter
func queryBoolPtr(r *http.Request, key string) *bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryFloat parses a float query parameter, falling back to a default
func queryFloat(r *http.Request, key string, def float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return def
}

// queryIntList parses a comma-separated integer list query parameter
func queryIntList(r *http.Request, key string) []int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	var out []int
	for _, part := range strings.Split(raw, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
