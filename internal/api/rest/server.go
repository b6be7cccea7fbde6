package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/store"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, db *store.Database, c *cache.RedisCache) *Server {
	handler := NewHandler(db, c)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Games
	api.HandleFunc("/games/live", handler.GetLiveGames).Methods("GET")
	api.HandleFunc("/games/{gameID}", handler.GetGame).Methods("GET")
	api.HandleFunc("/games/{gameID}/boxscore", handler.GetGameBoxScore).Methods("GET")

	// Game analytics
	api.HandleFunc("/games/{gameID}/score", handler.GetGameScore).Methods("GET")
	api.HandleFunc("/games/{gameID}/events", handler.GetGameEvents).Methods("GET")
	api.HandleFunc("/games/{gameID}/clutch", handler.GetClutchEvents).Methods("GET")
	api.HandleFunc("/games/{gameID}/situational", handler.GetSituationalStats).Methods("GET")
	api.HandleFunc("/games/{gameID}/lineups", handler.GetLineupStats).Methods("GET")
	api.HandleFunc("/games/{gameID}/lineups/best", handler.GetBestLineups).Methods("GET")
	api.HandleFunc("/games/{gameID}/players/{playerID}/quarters", handler.GetPlayerQuarters).Methods("GET")
	api.HandleFunc("/games/{gameID}/players/{playerID}/onoff", handler.GetPlayerOnOff).Methods("GET")
	api.HandleFunc("/games/{gameID}/teams/{teamID}/quarters", handler.GetTeamQuarters).Methods("GET")

	// Players
	api.HandleFunc("/players/search", handler.SearchPlayers).Methods("GET")
	api.HandleFunc("/players/{playerID}", handler.GetPlayer).Methods("GET")
	api.HandleFunc("/players/{playerID}/stats", handler.GetPlayerSeasonStats).Methods("GET")

	// Teams
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/{teamID}", handler.GetTeam).Methods("GET")

	// Season analytics
	api.HandleFunc("/seasons/{seasonID}/games", handler.GetSeasonGames).Methods("GET")
	api.HandleFunc("/seasons/{seasonID}/clutch", handler.GetSeasonClutchStats).Methods("GET")
	api.HandleFunc("/seasons/{seasonID}/quarters", handler.GetSeasonQuarterSplits).Methods("GET")
	api.HandleFunc("/seasons/{seasonID}/lineups", handler.GetSeasonLineupStats).Methods("GET")
	api.HandleFunc("/seasons/{seasonID}/onoff", handler.GetSeasonOnOff).Methods("GET")
	api.HandleFunc("/seasons/{seasonID}/trend", handler.GetPerformanceTrend).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
