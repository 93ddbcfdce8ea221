package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

var (
	_ core.HighScoreStore  = (*Store)(nil)
	_ core.HighScoreMerger = (*Store)(nil)
)

// LoadHighScores returns the list stored under key. A missing key or a value
// that is not a JSON array of integers yields an empty list.
func (s *Store) LoadHighScores(key string) ([]int, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load %s: %w", key, err)
	}

	return decodeScores(raw), nil
}

func decodeScores(raw string) []int {
	var scores []int
	if err := json.Unmarshal([]byte(raw), &scores); err != nil || scores == nil {
		return []int{}
	}
	return scores
}

// SaveHighScores replaces the list stored under key.
func (s *Store) SaveHighScores(key string, scores []int) error {
	if scores == nil {
		scores = []int{}
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %s: %w", key, err)
	}

	s.kv.Lock()
	defer s.kv.Unlock()

	_, err = s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// MergeHighScore adds score to the list stored under key, keeps the best
// limit values and returns the stored result. The read and the write run in
// one transaction.
func (s *Store) MergeHighScore(key string, score, limit int) ([]int, error) {
	s.kv.Lock()
	defer s.kv.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot begin merge of %s: %w", key, err)
	}
	defer tx.Rollback()

	scores := []int{}
	var raw string
	err = tx.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	switch {
	case err == nil:
		scores = decodeScores(raw)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("storage: cannot load %s: %w", key, err)
	}

	scores = append(scores, score)
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}

	data, err := json.Marshal(scores)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode %s: %w", key, err)
	}
	_, err = tx.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("storage: cannot commit %s: %w", key, err)
	}
	return scores, nil
}
