package cipher

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/sealbox/sealbox/internal/crypto"
)

const (
	sodiumKeySize   = 32 // secretbox key
	sodiumNonceSize = 24 // secretbox nonce
)

// sodiumHandler implements XSalsa20-Poly1305 via NaCl secretbox.
// Ciphertext layout: nonce || box, with the nonce omitted when the caller
// manages it externally.
type sodiumHandler struct {
	key *[sodiumKeySize]byte
}

func newSodiumHandler(params Params) (Handler, error) {
	h := &sodiumHandler{}
	if len(params.Key) == 0 {
		return h, nil
	}

	// secretbox needs exactly 32 bytes; stretch or compress the starter
	// key through HKDF so any key length works.
	raw, err := crypto.DeriveKey(params.Key, sha512.New, nil, sodiumKeySize, labelEncryption)
	if err != nil {
		return nil, fmt.Errorf("failed to derive secretbox key: %w", err)
	}

	h.key = new([sodiumKeySize]byte)
	copy(h.key[:], raw)
	crypto.ClearBytes(raw)

	return h, nil
}

func (h *sodiumHandler) Encrypt(plaintext, iv []byte) ([]byte, error) {
	if h.key == nil {
		return nil, ErrKeyNotSet
	}

	var nonce [sodiumNonceSize]byte
	embedNonce := iv == nil
	if embedNonce {
		if _, err := rand.Read(nonce[:]); err != nil {
			return nil, fmt.Errorf("failed to generate nonce: %w", err)
		}
	} else {
		if len(iv) != sodiumNonceSize {
			return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidIV, sodiumNonceSize, len(iv))
		}
		copy(nonce[:], iv)
	}

	if embedNonce {
		return secretbox.Seal(nonce[:], plaintext, &nonce, h.key), nil
	}
	return secretbox.Seal(nil, plaintext, &nonce, h.key), nil
}

func (h *sodiumHandler) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	if h.key == nil {
		return nil, ErrKeyNotSet
	}

	var nonce [sodiumNonceSize]byte
	if iv == nil {
		if len(ciphertext) < sodiumNonceSize+secretbox.Overhead {
			return nil, ErrInvalidCiphertext
		}
		copy(nonce[:], ciphertext[:sodiumNonceSize])
		ciphertext = ciphertext[sodiumNonceSize:]
	} else {
		if len(iv) != sodiumNonceSize {
			return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidIV, sodiumNonceSize, len(iv))
		}
		if len(ciphertext) < secretbox.Overhead {
			return nil, ErrInvalidCiphertext
		}
		copy(nonce[:], iv)
	}

	plaintext, ok := secretbox.Open(nil, ciphertext, &nonce, h.key)
	if !ok {
		return nil, ErrAuthFailed
	}

	return plaintext, nil
}
