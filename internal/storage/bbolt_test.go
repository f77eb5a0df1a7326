package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.sealbox")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Initialize(); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}
	return store
}

func TestOpenAndInitialize(t *testing.T) {
	store := openTestStore(t)

	initialized, err := store.IsInitialized()
	if err != nil {
		t.Fatalf("Failed to check initialization: %v", err)
	}
	if !initialized {
		t.Error("Store should be initialized")
	}
}

func TestDriverAndKey(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetDriver("Sodium"); err != nil {
		t.Fatalf("Failed to set driver: %v", err)
	}
	driver, err := store.GetDriver()
	if err != nil {
		t.Fatalf("Failed to get driver: %v", err)
	}
	if driver != "Sodium" {
		t.Errorf("Driver mismatch: got %s, want Sodium", driver)
	}

	// Key material is raw bytes, including non-ASCII values
	key := []byte{0x00, 0xff, 0xc3, 0xa9, 0x42}
	if err := store.SetKey(key); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}
	retrieved, err := store.GetKey()
	if err != nil {
		t.Fatalf("Failed to get key: %v", err)
	}
	if !bytes.Equal(retrieved, key) {
		t.Errorf("Key mismatch: got %v, want %v", retrieved, key)
	}
}

func TestLoadReturnsOnlyStoredKeys(t *testing.T) {
	store := openTestStore(t)

	// Nothing persisted yet
	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg) != 0 {
		t.Errorf("Expected empty config, got %v", cfg)
	}

	// Driver only
	if err := store.SetDriver("OpenSSL"); err != nil {
		t.Fatalf("Failed to set driver: %v", err)
	}
	cfg, err = store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg["driver"] != "OpenSSL" {
		t.Errorf("driver: got %q, want OpenSSL", cfg["driver"])
	}
	if _, ok := cfg["key"]; ok {
		t.Error("key should be absent until stored")
	}

	// Driver and key
	if err := store.SetKey([]byte("raw key bytes")); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}
	cfg, err = store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg["key"] != "raw key bytes" {
		t.Errorf("key: got %q", cfg["key"])
	}
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.sealbox")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.Initialize(); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}
	if err := store.SetDriver("Sodium"); err != nil {
		t.Fatalf("Failed to set driver: %v", err)
	}
	if err := store.SetKey([]byte("persisted key")); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}
	store.Close()

	// Reopen and verify
	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store2.Close()

	cfg, err := store2.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg["driver"] != "Sodium" || cfg["key"] != "persisted key" {
		t.Errorf("Config not persisted correctly: %v", cfg)
	}
}

func TestModifiedTimestamp(t *testing.T) {
	store := openTestStore(t)

	created, err := store.GetModified()
	if err != nil {
		t.Fatalf("Failed to get modified time: %v", err)
	}

	if err := store.UpdateModified(); err != nil {
		t.Fatalf("Failed to update modified time: %v", err)
	}
	updated, err := store.GetModified()
	if err != nil {
		t.Fatalf("Failed to get modified time: %v", err)
	}

	if updated.Before(created) {
		t.Error("Modified time went backwards")
	}
}
