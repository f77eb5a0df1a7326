package cipher

// Driver identifies an encryption backend.
type Driver string

const (
	DriverOpenSSL Driver = "OpenSSL"
	DriverSodium  Driver = "Sodium"
)

// drivers is the fixed, build-time list of supported backends. Order
// encodes preference for display purposes only; selection is always
// explicit, never first-available.
var drivers = []Driver{DriverOpenSSL, DriverSodium}

// Availability maps each registry driver to the result of its probe.
type Availability map[Driver]bool

// Registry pairs the driver list with an availability probe per driver.
type Registry struct {
	probes map[Driver]func() bool
}

// NewRegistry creates a registry with the default self-test probes.
func NewRegistry() *Registry {
	return NewRegistryWithProbes(map[Driver]func() bool{
		DriverOpenSSL: probeOpenSSL,
		DriverSodium:  probeSodium,
	})
}

// NewRegistryWithProbes creates a registry with custom probes, primarily
// for tests. Drivers without a probe entry report as unavailable.
func NewRegistryWithProbes(probes map[Driver]func() bool) *Registry {
	return &Registry{probes: probes}
}

// Drivers returns the supported drivers in preference order.
func (r *Registry) Drivers() []Driver {
	out := make([]Driver, len(drivers))
	copy(out, drivers)
	return out
}

// Contains reports whether name identifies a registry driver.
func (r *Registry) Contains(name string) bool {
	for _, d := range drivers {
		if string(d) == name {
			return true
		}
	}
	return false
}

// Probe runs every driver's availability probe and returns the result map.
// The map covers exactly the registry's driver set. Probes are synchronous
// and side-effect-free; callers run this once and treat the result as
// immutable.
func (r *Registry) Probe() Availability {
	availability := make(Availability, len(drivers))
	for _, d := range drivers {
		probe := r.probes[d]
		availability[d] = probe != nil && probe()
	}
	return availability
}

// probeOpenSSL checks the AES-CTR+HMAC backend with an encrypt/decrypt
// round trip on throwaway key material.
func probeOpenSSL() bool {
	return selfTest(DriverOpenSSL)
}

// probeSodium checks the secretbox backend the same way.
func probeSodium() bool {
	return selfTest(DriverSodium)
}

func selfTest(d Driver) bool {
	h, err := New(Params{Driver: d, Key: []byte("sealbox-probe-key"), Digest: DigestSHA512})
	if err != nil {
		return false
	}

	plaintext := []byte("probe")
	ciphertext, err := h.Encrypt(plaintext, nil)
	if err != nil {
		return false
	}
	decrypted, err := h.Decrypt(ciphertext, nil)
	if err != nil {
		return false
	}
	return string(decrypted) == string(plaintext)
}
