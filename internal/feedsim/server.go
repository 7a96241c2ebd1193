package feedsim

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/okian/boxscore/internal/domain/model"
)

// HTTP server timeouts.
const (
	serverReadTimeout       = 10 * time.Second
	serverWriteTimeout      = 30 * time.Second
	serverIdleTimeout       = 60 * time.Second
	serverReadHeaderTimeout = 5 * time.Second
	serverShutdownTimeout   = 5 * time.Second
)

// Server answers the four feed endpoints from a generated World.
type Server struct {
	world *World
}

// NewServer creates a feed server for the given world.
func NewServer(world *World) *Server {
	return &Server{world: world}
}

// Handler returns the simulator's route table. Routes live under
// /database so the pipeline can point its base URL at this server
// unchanged.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/database/games", s.handleGames)
	mux.HandleFunc("/database/gameStatsheets", s.handleGameSheets)
	mux.HandleFunc("/database/teamStatsheets", s.handleTeamSheets)
	mux.HandleFunc("/database/playerSeasonStats", s.handlePlayerStats)
	return mux
}

// handleGames serves a day's schedule. The season parameter is accepted
// and ignored: the simulator holds exactly one season.
func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil {
		http.Error(w, "day must be a number", http.StatusBadRequest)
		return
	}
	writeRecords(w, s.world.Games(day))
}

func (s *Server) handleGameSheets(w http.ResponseWriter, r *http.Request) {
	rows := make([]GameSheet, 0)
	for _, id := range splitIDs(r.URL.Query().Get("ids")) {
		if row, ok := s.world.SheetsByID[id]; ok {
			rows = append(rows, row)
		}
	}
	writeRecords(w, rows)
}

func (s *Server) handleTeamSheets(w http.ResponseWriter, r *http.Request) {
	rows := make([]TeamSheet, 0)
	for _, id := range splitIDs(r.URL.Query().Get("ids")) {
		if row, ok := s.world.TeamsByID[id]; ok {
			rows = append(rows, row)
		}
	}
	writeRecords(w, rows)
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	rows := make([]model.PlayerStatsheet, 0)
	for _, id := range splitIDs(r.URL.Query().Get("ids")) {
		if row, ok := s.world.PlayersByID[id]; ok {
			rows = append(rows, row)
		}
	}
	writeRecords(w, rows)
}

// splitIDs splits a comma joined ids parameter. Requested order is
// kept and duplicates are answered once per occurrence, mirroring how
// the real feed echoes its callers.
func splitIDs(raw string) []string {
	return strings.Split(raw, ",")
}

func writeRecords(w http.ResponseWriter, records any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		log.Printf("⚠️  failed to write response: %v", err)
	}
}

// Serve generates the season for cfg and serves it until ctx is done
// or the listener fails.
func Serve(ctx context.Context, cfg Config) error {
	cfg = cfg.normalized()
	world := Generate(cfg)

	log.Printf("🌐 feed simulator listening on %s (teams=%d days=%d seed=%d)",
		cfg.Addr, cfg.Teams, cfg.Days, cfg.Seed)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewServer(world).Handler(),
		ReadTimeout:       serverReadTimeout,
		WriteTimeout:      serverWriteTimeout,
		IdleTimeout:       serverIdleTimeout,
		ReadHeaderTimeout: serverReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("👋 feed simulator shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
