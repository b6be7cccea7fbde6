package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/fortuna/courtside/internal/pbp"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// pollInterval is how often live games are re-scored and broadcast.
const pollInterval = 5 * time.Second

// LiveSnapshot is one live game's reconstructed state, broadcast to
// every subscriber.
type LiveSnapshot struct {
	GameID int    `json:"game_id"`
	Period int    `json:"period"`
	Clock  string `json:"clock"`
	Home   int    `json:"home"`
	Away   int    `json:"away"`
	Margin int    `json:"margin"`
	Clutch bool   `json:"clutch"`
}

// Server pushes live score snapshots to websocket subscribers.
type Server struct {
	port     string
	server   *http.Server
	hub      *Hub
	gameRepo *repository.GameRepository
	playRepo *repository.PlayRepository
	stop     chan struct{}
}

// NewServer creates a new WebSocket server
func NewServer(db *store.Database) *Server {
	return &Server{
		hub:      NewHub(),
		gameRepo: repository.NewGameRepository(db),
		playRepo: repository.NewPlayRepository(db),
		stop:     make(chan struct{}),
	}
}

// Start starts the WebSocket server and the live poll loop
func (s *Server) Start(port string) error {
	s.port = port

	go s.hub.Run()
	go s.pollLoop()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/games/live", s.handleLiveGames)
	mux.HandleFunc("/ws/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
	}

	log.Printf("WebSocket server listening on :%s", port)
	return s.server.ListenAndServe()
}

// pollLoop re-scores every in-progress game on a fixed cadence and
// broadcasts the snapshots.
func (s *Server) pollLoop() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
		}

		if s.hub.ClientCount() == 0 {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), pollInterval)
		snapshots, err := s.snapshotLiveGames(ctx)
		cancel()
		if err != nil {
			log.Printf("live snapshot: %v", err)
			continue
		}
		if len(snapshots) == 0 {
			continue
		}

		payload, err := json.Marshal(map[string]interface{}{
			"type":  "live_scores",
			"games": snapshots,
		})
		if err != nil {
			log.Printf("encoding snapshots: %v", err)
			continue
		}

		s.hub.Broadcast(payload)
	}
}

// snapshotLiveGames replays each in-progress game's event log into a
// current score and clutch flag.
func (s *Server) snapshotLiveGames(ctx context.Context) ([]LiveSnapshot, error) {
	games, err := s.gameRepo.GetLiveGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching live games: %w", err)
	}

	var snapshots []LiveSnapshot
	for _, game := range games {
		events, err := s.playRepo.GetGameEvents(ctx, game.GameID)
		if err != nil {
			return nil, fmt.Errorf("fetching events for game %d: %w", game.GameID, err)
		}
		if len(events) == 0 {
			continue
		}

		latest := events[len(events)-1]
		score := pbp.FinalScore(game, events)

		snap := LiveSnapshot{
			GameID: game.GameID,
			Period: latest.Period,
			Clock:  latest.Clock,
			Home:   score.Home,
			Away:   score.Away,
			Margin: score.Margin(),
		}
		if sec, err := pbp.ClockToSeconds(latest.Clock); err == nil {
			f := pbp.DefaultClutchFilter()
			snap.Clutch = latest.Period >= f.MinPeriod &&
				sec <= f.TimeRemainingSeconds &&
				score.Margin() <= f.ScoreMargin
		}

		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

// handleLiveGames handles WebSocket connections for live game updates
func (s *Server) handleLiveGames(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "healthy", "clients": %d}`, s.hub.ClientCount())
}

// Shutdown gracefully shuts down the server and stops the poll loop
func (s *Server) Shutdown(ctx context.Context) error {
	close(s.stop)
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
