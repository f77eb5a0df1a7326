package cipher

import (
	"errors"
	"fmt"
)

// DigestSHA512 is the HMAC digest used for secret derivation and message
// authentication.
const DigestSHA512 = "SHA512"

var (
	ErrKeyNotSet         = errors.New("encryption key not set")
	ErrAuthFailed        = errors.New("authentication failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
	ErrInvalidIV         = errors.New("invalid initialization vector")
)

// Params carries the configuration handed to a handler constructor.
//
// Key is the caller-supplied starter key material. Secret, when non-empty,
// is the hex-encoded HKDF output the manager derived from Key; handlers may
// consume it directly instead of re-deriving. A keyless Params is legal:
// the constructor must succeed and the handler must fail encryption and
// decryption with ErrKeyNotSet.
type Params struct {
	Driver Driver
	Key    []byte
	Secret string
	Digest string
}

// Handler is the capability interface every backend implements.
//
// Encrypt with a nil iv generates a random one and embeds it in the
// returned ciphertext; with a caller-supplied iv the ciphertext omits it
// and the caller is responsible for presenting the same iv to Decrypt.
type Handler interface {
	Encrypt(plaintext, iv []byte) ([]byte, error)
	Decrypt(ciphertext, iv []byte) ([]byte, error)
}

// constructors is populated at build time and indexed by the closed Driver
// enumeration. No runtime registration, no name-based lookup.
var constructors = map[Driver]func(Params) (Handler, error){
	DriverOpenSSL: newOpenSSLHandler,
	DriverSodium:  newSodiumHandler,
}

// New constructs the backend selected by params.Driver.
func New(params Params) (Handler, error) {
	construct, ok := constructors[params.Driver]
	if !ok {
		return nil, fmt.Errorf("no handler registered for driver %q", params.Driver)
	}
	return construct(params)
}
