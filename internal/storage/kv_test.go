package storage

import "testing"

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()

	if _, ok, _ := m.Get("bestScore"); ok {
		t.Fatal("empty memory store should not contain bestScore")
	}
	m.Set("bestScore", "3")
	if v, ok, _ := m.Get("bestScore"); !ok || v != "3" {
		t.Errorf("Get() = %q ok:%v, expected \"3\"", v, ok)
	}
}

func TestWithPrefixIsolatesKeys(t *testing.T) {
	shared := NewMemory()
	alice := WithPrefix(shared, "alice")
	bob := WithPrefix(shared, "bob")

	alice.Set("bestScore", "10")
	bob.Set("bestScore", "20")

	if v, _, _ := alice.Get("bestScore"); v != "10" {
		t.Errorf("alice bestScore = %q, expected 10", v)
	}
	if v, _, _ := bob.Get("bestScore"); v != "20" {
		t.Errorf("bob bestScore = %q, expected 20", v)
	}
	if v, _, _ := shared.Get("alice:bestScore"); v != "10" {
		t.Errorf("underlying key = %q, expected alice:bestScore=10", v)
	}
}

func TestWithPrefixEmpty(t *testing.T) {
	m := NewMemory()
	if kv := WithPrefix(m, ""); kv != KV(m) {
		t.Error("empty prefix should return the store unchanged")
	}
}

func TestPrefixedOverSQLite(t *testing.T) {
	store := openTestStore(t)
	kv := WithPrefix(store, "carol")

	if err := kv.Set("currentScore", "4"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if v, ok, _ := store.Get("carol:currentScore"); !ok || v != "4" {
		t.Errorf("namespaced key = %q ok:%v", v, ok)
	}
}
