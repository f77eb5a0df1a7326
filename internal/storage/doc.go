// Package storage provides the BBolt-backed persisted configuration for
// sealbox.
//
// A single config bucket holds the driver name, the starter key material,
// and bookkeeping (version, timestamps). The store implements the
// encryption package's ConfigSource via Load, which returns only the keys
// actually persisted so absent values fall through to the built-in
// defaults during resolution.
//
// BBolt provides ACID transactions, file locking, and corruption detection.
package storage
