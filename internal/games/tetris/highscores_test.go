package tetris

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// memStore is an in-memory core.HighScoreStore.
type memStore struct {
	data    map[string][]int
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]int)}
}

func (m *memStore) LoadHighScores(key string) ([]int, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memStore) SaveHighScores(key string, scores []int) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = append([]int(nil), scores...)
	return nil
}

func TestHighScoresKeepsBestThree(t *testing.T) {
	h := NewHighScores(nil, "")
	assert.Empty(t, h.Scores())
	assert.Equal(t, 0, h.Best())

	h.Record(100)
	h.Record(300)
	h.Record(200)
	got := h.Record(50)

	assert.Equal(t, []int{300, 200, 100}, got)
	assert.Equal(t, 300, h.Best())

	got = h.Record(250)
	assert.Equal(t, []int{300, 250, 200}, got)
}

func TestHighScoresScoresIsCopy(t *testing.T) {
	h := NewHighScores(nil, HighScoreKey)
	h.Record(10)

	s := h.Scores()
	s[0] = 99
	assert.Equal(t, []int{10}, h.Scores())
}

func TestHighScoresPersist(t *testing.T) {
	store := newMemStore()
	store.data[HighScoreKey] = []int{5, 40, 10, 20}

	h := NewHighScores(store, HighScoreKey)
	assert.Equal(t, []int{40, 20, 10}, h.Scores(), "loaded list is normalized")

	h.Record(30)
	assert.Equal(t, []int{40, 30, 20}, store.data[HighScoreKey])

	reloaded := NewHighScores(store, HighScoreKey)
	assert.Equal(t, []int{40, 30, 20}, reloaded.Scores())
}

func TestHighScoresLoadFailureIsEmpty(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("disk on fire")

	h := NewHighScores(store, HighScoreKey)
	assert.Empty(t, h.Scores())
}

func TestHighScoresSaveFailureIgnored(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("read-only")

	h := NewHighScores(store, HighScoreKey)
	got := h.Record(70)

	assert.Equal(t, []int{70}, got)
	assert.Equal(t, 1, store.saves)
	require.NotContains(t, store.data, HighScoreKey)
}

func TestEngineRecordsToStore(t *testing.T) {
	store := newMemStore()
	e := newStartedEngine(t)
	e.highScores = NewHighScores(store, "custom")
	e.lives = 1
	e.score = 1200
	e.grid[2][0] = 1
	e.current = KindO.Shape()
	e.pos = Position{X: 0, Y: 0}

	e.Move(DirDown)

	assert.Equal(t, []int{1200}, store.data["custom"])
}

func TestHighScoresSharedStoreKeepsEverySession(t *testing.T) {
	store := newMemStore()
	a := NewHighScores(store, HighScoreKey)
	b := NewHighScores(store, HighScoreKey)

	a.Record(500)
	got := b.Record(300)

	assert.Equal(t, []int{500, 300}, got)
	assert.Equal(t, []int{500, 300}, store.data[HighScoreKey])

	a.Record(400)
	assert.Equal(t, []int{500, 400, 300}, store.data[HighScoreKey])
}

func TestHighScoresSharedSQLiteStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	a := NewHighScores(store, HighScoreKey)
	b := NewHighScores(store, HighScoreKey)

	a.Record(500)
	assert.Equal(t, []int{500, 300}, b.Record(300))
	assert.Equal(t, []int{700, 500, 300}, a.Record(700))

	persisted, err := store.LoadHighScores(HighScoreKey)
	require.NoError(t, err)
	assert.Equal(t, []int{700, 500, 300}, persisted)

	b.Record(100)
	persisted, err = store.LoadHighScores(HighScoreKey)
	require.NoError(t, err)
	assert.Equal(t, []int{700, 500, 300}, persisted, "a low score does not displace the shared list")
}
