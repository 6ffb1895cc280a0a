package storage

import (
	"sync"
)

// KV is a minimal string key-value store.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

var (
	_ KV = (*Store)(nil)
	_ KV = (*Memory)(nil)
	_ KV = Prefixed{}
)

// Memory is an in-process KV used when no database is available.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key and whether it exists.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Prefixed scopes every key of an underlying KV under "prefix:".
// The SSH server uses it to keep one record per user in a shared database.
type Prefixed struct {
	KV     KV
	Prefix string
}

// WithPrefix wraps kv so all keys are namespaced. An empty prefix returns kv unchanged.
func WithPrefix(kv KV, prefix string) KV {
	if prefix == "" {
		return kv
	}
	return Prefixed{KV: kv, Prefix: prefix}
}

// Get reads the namespaced key.
func (p Prefixed) Get(key string) (string, bool, error) {
	return p.KV.Get(p.key(key))
}

// Set writes the namespaced key.
func (p Prefixed) Set(key, value string) error {
	return p.KV.Set(p.key(key), value)
}

func (p Prefixed) key(key string) string {
	return p.Prefix + ":" + key
}
