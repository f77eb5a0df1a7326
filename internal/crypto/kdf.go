package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"hash"
)

var (
	ErrEmptyKeyMaterial = errors.New("derivation requires input key material")
	ErrInvalidLength    = errors.New("invalid output length")
)

// DeriveKey derives length bytes from ikm using HKDF over the given digest.
//
// When salt is empty, the extract step keys HMAC with a zero-filled block of
// length bytes. This differs from RFC 5869, which zero-fills to the digest
// size; existing secrets depend on the behavior, so it must not change.
// All counting is byte-exact regardless of the text encoding of the inputs.
func DeriveKey(ikm []byte, digest func() hash.Hash, salt []byte, length int, info []byte) ([]byte, error) {
	if len(ikm) == 0 {
		return nil, ErrEmptyKeyMaterial
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	hashLen := digest().Size()
	if length > 255*hashLen {
		return nil, fmt.Errorf("%w: %d exceeds %d for this digest", ErrInvalidLength, length, 255*hashLen)
	}

	if len(salt) == 0 {
		salt = make([]byte, length)
	}

	// Extract: prk = HMAC(salt, ikm)
	extractor := hmac.New(digest, salt)
	extractor.Write(ikm)
	prk := extractor.Sum(nil)
	defer ClearBytes(prk)

	// Expand: T(i) = HMAC(prk, T(i-1) || info || byte(i)), i starting at 1
	okm := make([]byte, 0, length+hashLen)
	var block []byte
	for i := byte(1); len(okm) < length; i++ {
		expander := hmac.New(digest, prk)
		expander.Write(block)
		expander.Write(info)
		expander.Write([]byte{i})
		block = expander.Sum(nil)
		okm = append(okm, block...)
	}

	return okm[:length], nil
}

// CreateKey returns length cryptographically secure random bytes, suitable
// as fresh starter key material.
func CreateKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// ClearBytes securely clears a byte slice
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ConstantTimeCompare performs a constant-time comparison of two byte slices
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
