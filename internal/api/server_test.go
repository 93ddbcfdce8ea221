package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func newTestServer(t *testing.T) (*storage.Store, http.Handler) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := NewServer(Options{
		GameID:       "tetris",
		HighScoreKey: "tetrisHighScores",
		Source:       store,
		Logger:       log.New(io.Discard),
	})
	return store, srv.Router()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHighScores(t *testing.T) {
	store, h := newTestServer(t)

	rec := get(t, h, "/api/highscores")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key":"tetrisHighScores","scores":[]}`, rec.Body.String())

	require.NoError(t, store.SaveHighScores("tetrisHighScores", []int{900, 300}))
	rec = get(t, h, "/api/highscores")
	assert.JSONEq(t, `{"key":"tetrisHighScores","scores":[900,300]}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestScores(t *testing.T) {
	store, h := newTestServer(t)
	for _, s := range []int{100, 500, 300} {
		_, err := store.SaveScore(storage.ScoreEntry{GameID: "tetris", Score: s})
		require.NoError(t, err)
	}

	rec := get(t, h, "/api/scores?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []storage.ScoreEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 500, entries[0].Score)
	assert.Equal(t, 300, entries[1].Score)

	rec = get(t, h, "/api/scores")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 3)
}

func TestScoresEmptyIsArray(t *testing.T) {
	_, h := newTestServer(t)

	rec := get(t, h, "/api/scores")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestScoresBadLimit(t *testing.T) {
	_, h := newTestServer(t)

	for _, q := range []string{"abc", "0", "-3"} {
		rec := get(t, h, "/api/scores?limit="+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", q)
	}
}

func TestStats(t *testing.T) {
	store, h := newTestServer(t)
	_, err := store.SaveScore(storage.ScoreEntry{GameID: "tetris", Score: 400})
	require.NoError(t, err)

	rec := get(t, h, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats storage.GameStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, "tetris", stats.GameID)
	assert.Equal(t, 1, stats.GamesCount)
	assert.Equal(t, 400, stats.HighScore)
}

func TestMethodNotAllowed(t *testing.T) {
	_, h := newTestServer(t)

	for _, path := range []string{"/healthz", "/api/highscores", "/api/scores", "/api/stats"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
	}
}

type failingSource struct{}

func (failingSource) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("boom")
}

func (failingSource) LoadHighScores(string) ([]int, error) { return nil, errors.New("boom") }

func (failingSource) GetGameStats(string) (*storage.GameStats, error) {
	return nil, errors.New("boom")
}

func TestSourceErrors(t *testing.T) {
	h := NewServer(Options{Source: failingSource{}, Logger: log.New(io.Discard)}).Router()

	for _, path := range []string{"/api/highscores", "/api/scores", "/api/stats"} {
		rec := get(t, h, path)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
	}
}
