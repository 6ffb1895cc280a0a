package bluebird

import (
	"strconv"

	"github.com/charmbracelet/log"
)

// Persisted keys.
const (
	KeyBestScore    = "bestScore"    // Highest score ever achieved
	KeyCurrentScore = "currentScore" // Score of the most recently ended run
	KeyGameOver     = "gameOver"     // "true" while an ended run awaits the score screen
)

// PersistenceStore is the key-value capability scoring persists through.
type PersistenceStore interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// Scorer tracks the score of the current run and keeps the best score
// persisted.
type Scorer struct {
	store   PersistenceStore
	logger  *log.Logger
	onError func(op string)

	current   int
	best      int
	bestDirty bool // A best score write failed and must be retried at game over
}

// NewScorer creates a scorer reading and writing through store.
func NewScorer(store PersistenceStore, logger *log.Logger, onError func(op string)) *Scorer {
	s := &Scorer{
		store:   store,
		logger:  logger,
		onError: onError,
	}
	s.best = s.readInt(KeyBestScore)
	return s
}

// Reset starts a new run: the score goes to zero and a stale run-ended
// marker is cleared. The best score is re-read but never lowered; if the
// store is behind, the write is retried at the next game over.
func (s *Scorer) Reset() {
	s.current = 0
	stored := s.readInt(KeyBestScore)
	s.bestDirty = s.best > stored
	s.best = max(s.best, stored)
	s.write(KeyGameOver, strconv.FormatBool(false))
}

// OnPassThrough adds one point and persists a new best score immediately.
// Returns the new score.
func (s *Scorer) OnPassThrough() int {
	s.current++
	if s.current > s.best {
		s.best = s.current
		s.bestDirty = !s.write(KeyBestScore, strconv.Itoa(s.best))
	}
	return s.current
}

// OnGameOver persists the final score and the run-ended marker for the
// score screen.
func (s *Scorer) OnGameOver() {
	if s.bestDirty {
		s.bestDirty = !s.write(KeyBestScore, strconv.Itoa(s.best))
	}
	s.write(KeyCurrentScore, strconv.Itoa(s.current))
	s.write(KeyGameOver, strconv.FormatBool(true))
}

// Current returns the score of the run in progress.
func (s *Scorer) Current() int {
	return s.current
}

// Best returns the best score known to this scorer.
func (s *Scorer) Best() int {
	return s.best
}

// readInt returns the integer stored under key, or 0 if it is missing,
// unreadable or corrupt.
func (s *Scorer) readInt(key string) int {
	n, err := readInt(s.store, key)
	if err != nil {
		s.logger.Warn("ignoring stored value", "key", key, "error", err)
		s.reportError("get")
	}
	return n
}

// write stores a value and reports whether it succeeded.
func (s *Scorer) write(key, value string) bool {
	if err := s.store.Set(key, value); err != nil {
		s.logger.Error("could not persist score", "key", key, "error", err)
		s.reportError("set")
		return false
	}
	return true
}

func (s *Scorer) reportError(op string) {
	if s.onError != nil {
		s.onError(op)
	}
}

func readInt(store PersistenceStore, key string) (int, error) {
	raw, ok, err := store.Get(key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, err
	}
	return n, nil
}

// BestScore returns the persisted best score, treating missing or corrupt
// records as 0.
func BestScore(store PersistenceStore) int {
	n, _ := readInt(store, KeyBestScore)
	return n
}

// ConsumeRunEnded is called by the score screen. If a run just ended it
// returns that run's score and clears the marker, so a later visit to the
// score screen does not report the same run again.
func ConsumeRunEnded(store PersistenceStore) (score int, ended bool, err error) {
	raw, ok, err := store.Get(KeyGameOver)
	if err != nil || !ok {
		return 0, false, err
	}
	if ended, _ = strconv.ParseBool(raw); !ended {
		return 0, false, nil
	}
	score, _ = readInt(store, KeyCurrentScore)
	if err := store.Set(KeyGameOver, strconv.FormatBool(false)); err != nil {
		return score, true, err
	}
	return score, true, nil
}
