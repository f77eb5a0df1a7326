// Package crypto provides key derivation and key generation for sealbox.
//
// Key derivation uses HKDF (RFC 5869 extract-and-expand) over a
// caller-supplied digest, with one deliberate deviation: when no salt is
// given, the extract step uses a zero-filled block whose length equals the
// requested output length instead of the digest's output size. Secrets
// already derived under that rule must keep resolving to the same bytes, so
// the deviation is load-bearing and covered by tests.
//
// Key generation (CreateKey) is a separate operation that draws fresh
// random bytes from the OS entropy source; it is never used inside
// derivation.
//
// Memory safety:
//   - Use ClearBytes() to zero sensitive data after use
//   - Use ConstantTimeCompare() for authentication tag checks
package crypto
