package tetris

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	// HighScoreKey is the persistence key of the high-score list.
	HighScoreKey = "tetrisHighScores"
	// HighScoreCount is how many scores the list keeps.
	HighScoreCount = 3
)

var logger = log.Default()

// SetLogger sets the logger used for best-effort persistence warnings.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// HighScores is the best-of list shown beside the board. Persistence is best
// effort: load failures leave the list empty and save failures are dropped.
type HighScores struct {
	store  core.HighScoreStore
	key    string
	scores []int
}

// NewHighScores loads the list stored under key. A nil store keeps the list
// in memory only.
func NewHighScores(store core.HighScoreStore, key string) *HighScores {
	if key == "" {
		key = HighScoreKey
	}
	h := &HighScores{store: store, key: key}
	if store == nil {
		return h
	}

	scores, err := store.LoadHighScores(key)
	if err != nil {
		logger.Debug("high scores unavailable", "key", key, "err", err)
		return h
	}
	h.scores = normalize(scores)
	return h
}

// Record inserts score, keeps the best HighScoreCount values and persists the
// result. The stored list is merged first, so sessions sharing a store keep
// each other's scores. It returns the updated list.
func (h *HighScores) Record(score int) []int {
	if h.store == nil {
		h.scores = normalize(append(h.scores, score))
		return h.Scores()
	}

	if m, ok := h.store.(core.HighScoreMerger); ok {
		merged, err := m.MergeHighScore(h.key, score, HighScoreCount)
		if err == nil {
			h.scores = normalize(merged)
			return h.Scores()
		}
		logger.Warn("high scores not merged", "key", h.key, "err", err)
		h.scores = normalize(append(h.scores, score))
		return h.Scores()
	}

	base := h.scores
	if stored, err := h.store.LoadHighScores(h.key); err == nil {
		base = stored
	} else {
		logger.Debug("high scores unavailable", "key", h.key, "err", err)
	}
	h.scores = normalize(append(base, score))
	if err := h.store.SaveHighScores(h.key, h.Scores()); err != nil {
		logger.Warn("high scores not saved", "key", h.key, "err", err)
	}
	return h.Scores()
}

// Scores returns a copy of the list, best first.
func (h *HighScores) Scores() []int {
	out := make([]int, len(h.scores))
	copy(out, h.scores)
	return out
}

// Best returns the top score, or 0 when the list is empty.
func (h *HighScores) Best() int {
	if len(h.scores) == 0 {
		return 0
	}
	return h.scores[0]
}

func normalize(scores []int) []int {
	out := make([]int, len(scores))
	copy(out, scores)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if len(out) > HighScoreCount {
		out = out[:HighScoreCount]
	}
	return out
}
