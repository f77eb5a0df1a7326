package encryption

import (
	"github.com/sealbox/sealbox/internal/cipher"
)

// Configuration keys recognized during resolution. Anything else found in
// an input source is dropped.
const (
	ConfigDriver = "driver"
	ConfigKey    = "key"
)

// Defaults returns the built-in configuration. Its key set doubles as the
// whitelist applied after every merge.
func Defaults() map[string]string {
	return map[string]string{
		ConfigDriver: string(cipher.DriverOpenSSL),
		ConfigKey:    "",
	}
}

// Resolver merges layered configuration into one effective parameter set.
// It keeps a stored baseline so successive resolutions are cumulative
// rather than reset to the defaults each time.
type Resolver struct {
	defaults map[string]string
	baseline map[string]string
}

// NewResolver creates a resolver whose baseline starts as a copy of the
// defaults.
func NewResolver(defaults map[string]string) *Resolver {
	return &Resolver{
		defaults: copyConfig(defaults),
		baseline: copyConfig(defaults),
	}
}

// Resolve merges, lowest precedence first: defaults, the stored baseline,
// then override. Later values win key-by-key; a key present in override
// wins even when its value is empty. Keys outside the defaults' key set are
// dropped after merging. The merged result replaces the stored baseline and
// a copy is returned.
//
// Resolve never judges driver legality; that is the Manager's job.
func (r *Resolver) Resolve(override map[string]string) map[string]string {
	merged := copyConfig(r.defaults)
	for k, v := range r.baseline {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}

	for k := range merged {
		if _, known := r.defaults[k]; !known {
			delete(merged, k)
		}
	}

	r.baseline = merged
	return copyConfig(merged)
}

// ResolveDriver is shorthand for resolving with only a driver override.
func (r *Resolver) ResolveDriver(name string) map[string]string {
	return r.Resolve(map[string]string{ConfigDriver: name})
}

// Driver returns the baseline driver value. Derived convenience; the
// mapping is the source of truth.
func (r *Resolver) Driver() string {
	return r.baseline[ConfigDriver]
}

// Key returns the baseline key material.
func (r *Resolver) Key() string {
	return r.baseline[ConfigKey]
}

// Baseline returns a copy of the stored baseline.
func (r *Resolver) Baseline() map[string]string {
	return copyConfig(r.baseline)
}

func copyConfig(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
