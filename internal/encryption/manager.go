package encryption

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sealbox/sealbox/internal/cipher"
	"github.com/sealbox/sealbox/internal/crypto"
)

// derivedSecretLength is the HKDF output size for the per-use secret, in
// bytes. Fixed alongside the SHA-512 digest; existing ciphertexts depend on
// both.
const derivedSecretLength = 64

// Introspection field names accepted by Lookup.
const (
	FieldConfig  = "config"
	FieldKey     = "key"
	FieldDriver  = "driver"
	FieldDrivers = "drivers"
	FieldDefault = "default"
)

// ConfigSource supplies the persisted driver configuration, consumed once
// per manager construction. A nil map means nothing is persisted.
type ConfigSource interface {
	Load() (map[string]string, error)
}

// Manager selects a cipher backend, resolves layered configuration, and
// derives the per-use secret handed to the backend. It owns its state
// exclusively; construct one per logical owner.
type Manager struct {
	resolver     *Resolver
	registry     *cipher.Registry
	availability cipher.Availability

	// factory produces the backend for a validated driver; swapped in
	// tests to observe the parameter set.
	factory func(cipher.Params) (cipher.Handler, error)

	// Set only by a successful Initialize; a failed call leaves both
	// untouched.
	driver  cipher.Driver
	handler cipher.Handler
}

// New builds a manager: resolves the persisted configuration over the
// defaults and probes backend availability. It fails with
// ErrNoHandlerAvailable when every probe reports false; no partially
// constructed manager escapes.
func New(source ConfigSource, registry *cipher.Registry) (*Manager, error) {
	resolver := NewResolver(Defaults())

	var persisted map[string]string
	if source != nil {
		var err error
		persisted, err = source.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load persisted configuration: %w", err)
		}
	}
	cfg := resolver.Resolve(persisted)

	// Guard against malformed driver identifiers in persisted data. This
	// never replaces the registry-membership check Initialize performs.
	if driver := cfg[ConfigDriver]; isAllDigits(driver) {
		return nil, fmt.Errorf("%w: malformed driver identifier %q", ErrUnknownDriver, driver)
	}

	availability := registry.Probe()
	usable := 0
	for _, ok := range availability {
		if ok {
			usable++
		}
	}

	logrus.WithFields(logrus.Fields{
		"driver":  cfg[ConfigDriver],
		"usable":  usable,
		"drivers": len(availability),
	}).Debug("Encryption manager constructed")

	if usable == 0 {
		return nil, ErrNoHandlerAvailable
	}

	return &Manager{
		resolver:     resolver,
		registry:     registry,
		availability: availability,
		factory:      cipher.New,
	}, nil
}

// Initialize re-resolves configuration with params as the override,
// validates the requested driver, derives the secret when key material is
// present, and produces a ready-to-use handler. It may be called
// repeatedly; each success replaces the active driver and handler.
func (m *Manager) Initialize(params map[string]string) (cipher.Handler, error) {
	cfg := m.resolver.Resolve(params)

	name := cfg[ConfigDriver]
	if name == "" {
		return nil, ErrNoDriverRequested
	}
	if !m.registry.Contains(name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, name)
	}

	driver := cipher.Driver(name)
	if !m.availability[driver] {
		return nil, fmt.Errorf("%w: %s", ErrDriverNotAvailable, name)
	}

	handlerParams := cipher.Params{
		Driver: driver,
		Digest: cipher.DigestSHA512,
	}
	if key := cfg[ConfigKey]; key != "" {
		secret, err := crypto.DeriveKey([]byte(key), sha512.New, nil, derivedSecretLength, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to derive secret: %w", err)
		}
		handlerParams.Key = []byte(key)
		handlerParams.Secret = hex.EncodeToString(secret)
		crypto.ClearBytes(secret)
	}

	handler, err := m.factory(handlerParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s handler: %w", name, err)
	}

	m.driver = driver
	m.handler = handler

	logrus.WithFields(logrus.Fields{
		"driver":  name,
		"has_key": handlerParams.Key != nil,
	}).Info("Encryption handler initialized")

	return handler, nil
}

// InitializeDriver is the string-shorthand form of Initialize.
func (m *Manager) InitializeDriver(name string) (cipher.Handler, error) {
	return m.Initialize(map[string]string{ConfigDriver: name})
}

// Driver returns the active driver; empty until Initialize succeeds.
func (m *Manager) Driver() cipher.Driver {
	return m.driver
}

// Handler returns the active handler; nil until Initialize succeeds.
func (m *Manager) Handler() cipher.Handler {
	return m.handler
}

// Availability returns a copy of the construction-time availability map.
func (m *Manager) Availability() cipher.Availability {
	out := make(cipher.Availability, len(m.availability))
	for d, ok := range m.availability {
		out[d] = ok
	}
	return out
}

// Lookup exposes read-only access to a closed set of fields: config, key,
// driver, drivers, and default. Any other name yields ("", false) rather
// than an error.
func (m *Manager) Lookup(field string) (string, bool) {
	switch field {
	case FieldConfig:
		return renderConfig(m.resolver.Baseline()), true
	case FieldKey:
		return m.resolver.Key(), true
	case FieldDriver:
		return m.resolver.Driver(), true
	case FieldDrivers:
		names := make([]string, 0, len(m.registry.Drivers()))
		for _, d := range m.registry.Drivers() {
			names = append(names, string(d))
		}
		return strings.Join(names, ", "), true
	case FieldDefault:
		return Defaults()[ConfigDriver], true
	default:
		return "", false
	}
}

// renderConfig formats a configuration map deterministically.
func renderConfig(cfg map[string]string) string {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+cfg[k])
	}
	return strings.Join(parts, " ")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
