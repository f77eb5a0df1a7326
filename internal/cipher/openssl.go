package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"github.com/sealbox/sealbox/internal/crypto"
)

const (
	opensslKeySize = 32            // AES-256
	opensslIVSize  = aes.BlockSize // CTR initialization vector
	opensslMACSize = sha512.Size   // HMAC-SHA512 tag
)

// Subkey derivation labels. Changing either breaks decryption of existing
// ciphertexts.
var (
	labelEncryption     = []byte("encryption")
	labelAuthentication = []byte("authentication")
)

// opensslHandler implements AES-256-CTR with encrypt-then-MAC HMAC-SHA512.
// Ciphertext layout: mac || iv || body, with the iv omitted when the caller
// manages it externally.
type opensslHandler struct {
	encKey []byte
	macKey []byte
}

func newOpenSSLHandler(params Params) (Handler, error) {
	h := &opensslHandler{}
	if len(params.Key) == 0 {
		// Keyless construction is legal; operations will refuse to run.
		return h, nil
	}

	encKey, err := crypto.DeriveKey(params.Key, sha512.New, nil, opensslKeySize, labelEncryption)
	if err != nil {
		return nil, fmt.Errorf("failed to derive encryption subkey: %w", err)
	}
	h.encKey = encKey

	if params.Secret != "" {
		macKey, err := hex.DecodeString(params.Secret)
		if err != nil {
			return nil, fmt.Errorf("malformed derived secret: %w", err)
		}
		h.macKey = macKey
	} else {
		macKey, err := crypto.DeriveKey(params.Key, sha512.New, nil, opensslMACSize, labelAuthentication)
		if err != nil {
			return nil, fmt.Errorf("failed to derive authentication subkey: %w", err)
		}
		h.macKey = macKey
	}

	return h, nil
}

func (h *opensslHandler) Encrypt(plaintext, iv []byte) ([]byte, error) {
	if h.encKey == nil {
		return nil, ErrKeyNotSet
	}

	embedIV := iv == nil
	if embedIV {
		iv = make([]byte, opensslIVSize)
		if _, err := rand.Read(iv); err != nil {
			return nil, fmt.Errorf("failed to generate iv: %w", err)
		}
	} else if len(iv) != opensslIVSize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidIV, opensslIVSize, len(iv))
	}

	block, err := aes.NewCipher(h.encKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	body := make([]byte, len(plaintext))
	gocipher.NewCTR(block, iv).XORKeyStream(body, plaintext)

	mac := h.authenticate(iv, body)
	result := make([]byte, 0, opensslMACSize+opensslIVSize+len(body))
	result = append(result, mac...)
	if embedIV {
		result = append(result, iv...)
	}
	result = append(result, body...)

	return result, nil
}

func (h *opensslHandler) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	if h.encKey == nil {
		return nil, ErrKeyNotSet
	}

	if len(ciphertext) < opensslMACSize {
		return nil, ErrInvalidCiphertext
	}
	mac := ciphertext[:opensslMACSize]
	body := ciphertext[opensslMACSize:]

	if iv == nil {
		if len(body) < opensslIVSize {
			return nil, ErrInvalidCiphertext
		}
		iv = body[:opensslIVSize]
		body = body[opensslIVSize:]
	} else if len(iv) != opensslIVSize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidIV, opensslIVSize, len(iv))
	}

	if !crypto.ConstantTimeCompare(mac, h.authenticate(iv, body)) {
		return nil, ErrAuthFailed
	}

	block, err := aes.NewCipher(h.encKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext := make([]byte, len(body))
	gocipher.NewCTR(block, iv).XORKeyStream(plaintext, body)

	return plaintext, nil
}

// authenticate computes the HMAC-SHA512 tag over iv || body.
func (h *opensslHandler) authenticate(iv, body []byte) []byte {
	mac := hmac.New(sha512.New, h.macKey)
	mac.Write(iv)
	mac.Write(body)
	return mac.Sum(nil)
}
