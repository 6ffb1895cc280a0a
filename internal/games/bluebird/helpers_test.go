package bluebird

import (
	"errors"
	"strconv"
	"sync"

	"github.com/vovakirdan/bluebird-flight/internal/config"
)

const testDT = 1.0 / 60.0

// midRand always returns the middle of the range. With the default table
// every gap then contains the player's start height.
type midRand struct{}

func (midRand) IntBetween(min, max int) int {
	return (min + max) / 2
}

// scriptedRand replays values and falls back to min once exhausted.
type scriptedRand struct {
	values []int
}

func (s *scriptedRand) IntBetween(min, max int) int {
	if len(s.values) == 0 {
		return min
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

// countingStore is an in-memory store that counts writes per key.
type countingStore struct {
	mu      sync.Mutex
	values  map[string]string
	writes  map[string]int
	failSet bool
	failGet bool
}

func newCountingStore() *countingStore {
	return &countingStore{values: map[string]string{}, writes: map[string]int{}}
}

func (s *countingStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return "", false, errors.New("read failed")
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *countingStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSet {
		return errors.New("write failed")
	}
	s.values[key] = value
	s.writes[key]++
	return nil
}

func (s *countingStore) intValue(key string) int {
	n, _ := strconv.Atoi(s.values[key])
	return n
}

type recordingAudio struct {
	events []string
}

func (a *recordingAudio) PlayMusic() { a.events = append(a.events, "music") }
func (a *recordingAudio) StopMusic() { a.events = append(a.events, "stop-music") }
func (a *recordingAudio) StopAll() { a.events = append(a.events, "stop-all") }
func (a *recordingAudio) Play(effect Effect) { a.events = append(a.events, string(effect)) }

type recordingScenes struct {
	paused     int
	countdowns []int
	resumed    int
	summaries  []Summary
}

func (s *recordingScenes) Paused() { s.paused++ }
func (s *recordingScenes) Countdown(n int) { s.countdowns = append(s.countdowns, n) }
func (s *recordingScenes) Resumed() { s.resumed++ }
func (s *recordingScenes) GameOver(summary Summary) { s.summaries = append(s.summaries, summary) }

// hoverConfig disables gravity so the player stays at its start height and,
// with midRand, passes through every gap.
func hoverConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Physics.Gravity = 0
	return cfg
}

// wideConfig spaces obstacles far apart so bounds are reached before the
// first pair arrives.
func wideConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Difficulty.Tiers.Easy.Horizontal = config.Range{Min: 700, Max: 750}
	return cfg
}

// tickUntil ticks g until done reports true or limit ticks have run.
func tickUntil(g *Game, limit int, done func() bool) bool {
	for i := 0; i < limit; i++ {
		if done() {
			return true
		}
		g.Tick(testDT)
	}
	return done()
}

type recordingMetrics struct {
	counts map[string]int
	tiers  []string
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counts: map[string]int{}}
}

func (m *recordingMetrics) RunStarted(tier string) { m.counts["start:"+tier]++ }
func (m *recordingMetrics) PassThrough() { m.counts["pass"]++ }
func (m *recordingMetrics) Flap() { m.counts["flap"]++ }
func (m *recordingMetrics) Paused() { m.counts["pause"]++ }
func (m *recordingMetrics) TierChanged(tier string) { m.tiers = append(m.tiers, tier) }
func (m *recordingMetrics) GameOver(cause string, score int) { m.counts["over:"+cause]++ }
func (m *recordingMetrics) RunAbandoned() { m.counts["abandoned"]++ }
func (m *recordingMetrics) StoreError(op string) { m.counts["store:"+op]++ }
