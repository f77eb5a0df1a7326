// Package cipher provides the interchangeable encryption backends for
// sealbox and the registry that describes them.
//
// Backends ("drivers") share the Handler interface and are constructed
// through a factory indexed by the closed Driver enumeration; there is no
// dynamic lookup by name outside that table. The registry carries the fixed
// preference-ordered driver list and an availability probe per driver.
// Probes are cheap self-test round trips, run once per manager construction.
//
// Implemented backends:
//   - OpenSSL: AES-256-CTR with encrypt-then-MAC HMAC-SHA512
//   - Sodium: NaCl secretbox (XSalsa20-Poly1305)
//
// Both derive fixed-size subkeys from the configured starter key via the
// crypto package's HKDF, so starter keys of any length work.
package cipher
