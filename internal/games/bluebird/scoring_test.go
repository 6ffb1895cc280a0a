package bluebird

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestScorer(store PersistenceStore) (*Scorer, *[]string) {
	var errs []string
	s := NewScorer(store, log.New(io.Discard), func(op string) { errs = append(errs, op) })
	return s, &errs
}

func TestScorerPersistsNewBestImmediately(t *testing.T) {
	store := newCountingStore()
	store.values[KeyBestScore] = "2"
	s, _ := newTestScorer(store)
	s.Reset()

	s.OnPassThrough()
	s.OnPassThrough()
	if store.writes[KeyBestScore] != 0 {
		t.Fatalf("best written before it was beaten")
	}

	s.OnPassThrough()
	if got := store.values[KeyBestScore]; got != "3" {
		t.Errorf("bestScore = %q, want 3", got)
	}
	if s.Best() != 3 || s.Current() != 3 {
		t.Errorf("Current/Best = %d/%d, want 3/3", s.Current(), s.Best())
	}
}

func TestScorerMissingOrCorruptBest(t *testing.T) {
	tests := []struct {
		name    string
		stored  map[string]string
		failGet bool
		errors  int
	}{
		{"missing", map[string]string{}, false, 0},
		{"corrupt", map[string]string{KeyBestScore: "lots"}, false, 1},
		{"negative", map[string]string{KeyBestScore: "-4"}, false, 0},
		{"read error", map[string]string{KeyBestScore: "9"}, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newCountingStore()
			store.values = tt.stored
			store.failGet = tt.failGet
			s, errs := newTestScorer(store)
			if s.Best() != 0 {
				t.Errorf("Best() = %d, want 0", s.Best())
			}
			if len(*errs) != tt.errors {
				t.Errorf("errors = %v, want %d", *errs, tt.errors)
			}
		})
	}
}

func TestScorerGameOverWrites(t *testing.T) {
	store := newCountingStore()
	s, _ := newTestScorer(store)
	s.Reset()
	for i := 0; i < 4; i++ {
		s.OnPassThrough()
	}
	s.OnGameOver()

	if store.values[KeyCurrentScore] != "4" || store.values[KeyGameOver] != "true" {
		t.Errorf("stored = %v", store.values)
	}
	// Reset wrote false, game over wrote true.
	if store.writes[KeyGameOver] != 2 || store.writes[KeyCurrentScore] != 1 {
		t.Errorf("writes = %v", store.writes)
	}
}

func TestScorerRetriesBestAtGameOver(t *testing.T) {
	store := newCountingStore()
	s, errs := newTestScorer(store)
	s.Reset()

	store.failSet = true
	s.OnPassThrough()
	s.OnPassThrough()
	if len(*errs) != 2 || (*errs)[0] != "set" {
		t.Fatalf("errors = %v, want two set failures", *errs)
	}

	store.failSet = false
	s.OnGameOver()
	if got := store.values[KeyBestScore]; got != "2" {
		t.Errorf("bestScore after retry = %q, want 2", got)
	}
}

func TestScorerKeepsBestWhileStoreIsBehind(t *testing.T) {
	store := newCountingStore()
	s, _ := newTestScorer(store)
	s.Reset()

	store.failSet = true
	for i := 0; i < 5; i++ {
		s.OnPassThrough()
	}
	s.OnGameOver()
	s.Reset()
	if s.Best() != 5 {
		t.Fatalf("Best() after failed writes = %d, want 5", s.Best())
	}

	store.failSet = false
	s.Reset()
	s.OnPassThrough()
	s.OnGameOver()
	if got := store.values[KeyBestScore]; got != "5" {
		t.Errorf("bestScore = %q, want 5 once the store accepts writes", got)
	}
	if s.Best() != 5 {
		t.Errorf("Best() = %d, want 5", s.Best())
	}
}

func TestScorerResetPicksUpHigherStoredBest(t *testing.T) {
	store := newCountingStore()
	s, _ := newTestScorer(store)
	s.Reset()
	s.OnPassThrough()
	s.OnGameOver()

	store.values[KeyBestScore] = "40"
	s.Reset()
	if s.Best() != 40 {
		t.Errorf("Best() = %d, want 40", s.Best())
	}
}

func TestScorerResetClearsRunEnded(t *testing.T) {
	store := newCountingStore()
	store.values[KeyGameOver] = "true"
	s, _ := newTestScorer(store)
	s.Reset()
	if store.values[KeyGameOver] != "false" {
		t.Errorf("gameOver = %q after reset", store.values[KeyGameOver])
	}
	if s.Current() != 0 {
		t.Errorf("Current() = %d after reset", s.Current())
	}
}

func TestConsumeRunEnded(t *testing.T) {
	store := newCountingStore()
	if _, ended, err := ConsumeRunEnded(store); ended || err != nil {
		t.Fatalf("empty store: ended=%v err=%v", ended, err)
	}

	store.values[KeyGameOver] = "true"
	store.values[KeyCurrentScore] = "17"
	score, ended, err := ConsumeRunEnded(store)
	if err != nil || !ended || score != 17 {
		t.Fatalf("ConsumeRunEnded = %d, %v, %v", score, ended, err)
	}
	if store.values[KeyGameOver] != "false" {
		t.Errorf("marker not cleared")
	}
	if _, ended, _ := ConsumeRunEnded(store); ended {
		t.Errorf("same run reported twice")
	}
}

func TestBestScore(t *testing.T) {
	store := newCountingStore()
	if BestScore(store) != 0 {
		t.Errorf("empty store best != 0")
	}
	store.values[KeyBestScore] = "41"
	if BestScore(store) != 41 {
		t.Errorf("BestScore = %d, want 41", BestScore(store))
	}
}
