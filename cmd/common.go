package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/sealbox/sealbox/internal/cipher"
	"github.com/sealbox/sealbox/internal/crypto"
	"github.com/sealbox/sealbox/internal/encryption"
	"github.com/sealbox/sealbox/internal/storage"
)

// StoreFile is the persisted configuration store in the current directory.
const StoreFile = ".sealbox"

// KeyEnvVar carries hex-encoded key material, checked before prompting.
const KeyEnvVar = "SEALBOX_KEY"

// NewManager builds an encryption manager over the persisted store when one
// exists in the current directory, or over built-in defaults otherwise. The
// store is only read during construction, so it is closed before returning.
func NewManager() (*encryption.Manager, error) {
	var source encryption.ConfigSource
	if _, err := os.Stat(StoreFile); err == nil {
		store, err := storage.Open(StoreFile)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		source = store
	}
	return encryption.New(source, cipher.NewRegistry())
}

// NewManagerOrExit is like NewManager but exits on error.
func NewManagerOrExit() *encryption.Manager {
	m, err := NewManager()
	if err != nil {
		HandleError(err)
	}
	return m
}

// GetKey decodes key material from the --key flag (hex) or, failing that,
// the SEALBOX_KEY environment variable (hex). Returns nil when neither
// supplied anything, leaving the persisted key (if any) in effect. The
// caller is responsible for calling crypto.ClearBytes on the returned key.
func GetKey(keyHex string) ([]byte, error) {
	if keyHex == "" {
		keyHex = os.Getenv(KeyEnvVar)
	}
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid hex key: %w", err)
		}
		return key, nil
	}
	return nil, nil
}

// ReadKey prompts for key material on the terminal without echoing.
func ReadKey(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	key, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}
	return key, nil
}

// InitHandler resolves key material and produces a ready handler, exiting
// on any failure. When neither flag, environment, nor the persisted store
// supplies a key, the user is prompted.
func InitHandler(driver, keyHex string) cipher.Handler {
	m := NewManagerOrExit()

	override := make(map[string]string)
	if driver != "" {
		override[encryption.ConfigDriver] = driver
	}

	key, err := GetKey(keyHex)
	if err != nil {
		HandleError(err)
	}
	if key == nil {
		if persisted, _ := m.Lookup(encryption.FieldKey); persisted == "" {
			key, err = ReadKey("Enter key: ")
			if err != nil {
				HandleError(err)
			}
		}
	}
	if key != nil {
		override[encryption.ConfigKey] = string(key)
		crypto.ClearBytes(key)
	}

	handler, err := m.Initialize(override)
	if err != nil {
		HandleError(err)
	}
	return handler
}

// ReadInput reads the named file, or standard input when path is empty.
func ReadInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// HandleError reports common errors consistently and exits.
func HandleError(err error) {
	switch {
	case errors.Is(err, encryption.ErrNoHandlerAvailable):
		fmt.Fprintf(os.Stderr, "Error: no encryption backend is usable on this system\n")
	case errors.Is(err, encryption.ErrNoDriverRequested):
		fmt.Fprintf(os.Stderr, "Error: no driver requested\n")
		fmt.Fprintf(os.Stderr, "Pass --driver or run 'sealbox init' first\n")
	case errors.Is(err, encryption.ErrUnknownDriver):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "Run 'sealbox drivers' to list supported drivers\n")
	case errors.Is(err, encryption.ErrDriverNotAvailable):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "Run 'sealbox drivers' to check availability\n")
	case errors.Is(err, cipher.ErrAuthFailed):
		fmt.Fprintf(os.Stderr, "Error: authentication failed (wrong key or corrupted data)\n")
	case errors.Is(err, cipher.ErrKeyNotSet):
		fmt.Fprintf(os.Stderr, "Error: no key material available\n")
		fmt.Fprintf(os.Stderr, "Pass --key, set %s, or run 'sealbox init'\n", KeyEnvVar)
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}
