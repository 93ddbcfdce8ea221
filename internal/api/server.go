// Package api serves the leaderboard over HTTP as read-only JSON.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	LoadHighScores(key string) ([]int, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Options configures a Server.
type Options struct {
	Addr         string
	GameID       string
	HighScoreKey string
	Source       ScoreSource
	Logger       *log.Logger
}

// Server is the leaderboard HTTP server.
type Server struct {
	opts   Options
	server *http.Server
	logger *log.Logger
}

// NewServer creates a server with its routes registered.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{opts: opts, logger: logger}
	s.server = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router returns the request router.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	// Routes stay on the root router so a method mismatch answers 405.
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/highscores", s.handleHighScores).Methods(http.MethodGet)
	r.HandleFunc("/api/scores", s.handleScores).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", s.handleStats).Methods(http.MethodGet)
	return r
}

// ListenAndServe serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting HTTP server", "address", s.opts.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHighScores(w http.ResponseWriter, _ *http.Request) {
	scores, err := s.opts.Source.LoadHighScores(s.opts.HighScoreKey)
	if err != nil {
		s.fail(w, "load high scores", err)
		return
	}
	if scores == nil {
		scores = []int{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"key":    s.opts.HighScoreKey,
		"scores": scores,
	})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxLimit)
	}

	scores, err := s.opts.Source.TopScores(s.opts.GameID, limit)
	if err != nil {
		s.fail(w, "load scores", err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	s.writeJSON(w, http.StatusOK, scores)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	stats, err := s.opts.Source.GetGameStats(s.opts.GameID)
	if err != nil {
		s.fail(w, "load stats", err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) fail(w http.ResponseWriter, what string, err error) {
	s.logger.Error("request failed", "op", what, "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "err", err)
	}
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
