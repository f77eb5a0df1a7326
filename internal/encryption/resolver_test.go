package encryption

import (
	"testing"
)

func TestResolveMergePrecedence(t *testing.T) {
	// defaults < persisted baseline < override, key-by-key
	r := NewResolver(Defaults())
	r.Resolve(map[string]string{"driver": "Sodium"})

	cfg := r.Resolve(map[string]string{"key": "abc"})
	if cfg["driver"] != "Sodium" {
		t.Errorf("driver: got %q, want Sodium", cfg["driver"])
	}
	if cfg["key"] != "abc" {
		t.Errorf("key: got %q, want abc", cfg["key"])
	}
}

func TestResolveDropsUnknownKeys(t *testing.T) {
	r := NewResolver(Defaults())
	cfg := r.Resolve(map[string]string{"driver": "OpenSSL", "extra": "x"})

	if _, ok := cfg["extra"]; ok {
		t.Error("unknown key survived resolution")
	}
	if _, ok := r.Baseline()["extra"]; ok {
		t.Error("unknown key survived into the baseline")
	}
	if len(cfg) != len(Defaults()) {
		t.Errorf("resolved config has %d keys, want %d", len(cfg), len(Defaults()))
	}
}

func TestResolveEmptyOverrideKeepsBaseline(t *testing.T) {
	r := NewResolver(Defaults())
	r.Resolve(map[string]string{"driver": "Sodium", "key": "k1"})

	cfg := r.Resolve(nil)
	if cfg["driver"] != "Sodium" || cfg["key"] != "k1" {
		t.Errorf("empty override reset the baseline: %v", cfg)
	}

	cfg = r.Resolve(map[string]string{})
	if cfg["driver"] != "Sodium" || cfg["key"] != "k1" {
		t.Errorf("empty map override reset the baseline: %v", cfg)
	}
}

func TestResolveCumulative(t *testing.T) {
	// Successive overrides accumulate over the stored baseline
	r := NewResolver(Defaults())
	r.Resolve(map[string]string{"key": "k1"})
	cfg := r.Resolve(map[string]string{"driver": "Sodium"})

	if cfg["key"] != "k1" {
		t.Errorf("earlier override lost: key=%q", cfg["key"])
	}
	if cfg["driver"] != "Sodium" {
		t.Errorf("driver: got %q, want Sodium", cfg["driver"])
	}
}

func TestResolvePresentEmptyValueWins(t *testing.T) {
	// A key present in the override wins even with an empty value
	r := NewResolver(Defaults())
	cfg := r.Resolve(map[string]string{"driver": ""})

	if cfg["driver"] != "" {
		t.Errorf("empty override value lost: driver=%q", cfg["driver"])
	}
}

func TestResolveDriverShorthand(t *testing.T) {
	r := NewResolver(Defaults())
	cfg := r.ResolveDriver("Sodium")

	if cfg["driver"] != "Sodium" {
		t.Errorf("driver: got %q, want Sodium", cfg["driver"])
	}
	if cfg["key"] != "" {
		t.Errorf("key should stay at its baseline value, got %q", cfg["key"])
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	r := NewResolver(Defaults())
	cfg := r.Resolve(nil)
	cfg["driver"] = "mutated"

	if r.Driver() == "mutated" {
		t.Error("mutating the returned map changed the baseline")
	}
}

func TestResolverAccessors(t *testing.T) {
	r := NewResolver(Defaults())
	if r.Driver() != "OpenSSL" {
		t.Errorf("default driver: got %q, want OpenSSL", r.Driver())
	}
	if r.Key() != "" {
		t.Errorf("default key: got %q, want empty", r.Key())
	}

	r.Resolve(map[string]string{"driver": "Sodium", "key": "abc"})
	if r.Driver() != "Sodium" {
		t.Errorf("driver accessor: got %q, want Sodium", r.Driver())
	}
	if r.Key() != "abc" {
		t.Errorf("key accessor: got %q, want abc", r.Key())
	}
}
