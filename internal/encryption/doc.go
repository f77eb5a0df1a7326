// Package encryption orchestrates driver selection, configuration
// resolution, and secret derivation for sealbox.
//
// Configuration is resolved in layers, lowest precedence first: built-in
// defaults, the stored baseline (seeded from the persisted configuration),
// then call-time overrides. Only the keys known to the defaults survive
// resolution; everything else is dropped.
//
// The Manager probes backend availability exactly once at construction and
// validates the requested driver on every Initialize call, in order:
// driver present, driver known, driver available. When key material is
// configured, a 64-byte secret is derived via HKDF-SHA512 and handed to the
// handler factory alongside the key; without key material the factory is
// invoked keyless.
//
// A Manager owns its mutable state exclusively. Construct one per logical
// owner; the availability map is the only part safe to share.
package encryption
