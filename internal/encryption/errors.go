package encryption

import "errors"

var (
	// ErrNoHandlerAvailable means construction found zero usable backends.
	ErrNoHandlerAvailable = errors.New("no encryption handler available")
	// ErrNoDriverRequested means the resolved configuration has no driver.
	ErrNoDriverRequested = errors.New("no encryption driver requested")
	// ErrUnknownDriver means the requested driver is not in the registry.
	ErrUnknownDriver = errors.New("unknown encryption driver")
	// ErrDriverNotAvailable means the driver is known but probed unavailable.
	ErrDriverNotAvailable = errors.New("encryption driver not available")
)
