package extractor

import (
	"errors"
	"fmt"
)

// Boundary errors. The pipeline stages themselves never fail; not-found
// conditions degrade to absent components. Errors are reserved for the
// request boundary: timeouts, a dead model backend, bad configuration.
var (
	// ErrTimeout the extraction exceeded the caller's deadline. The
	// in-flight computation is abandoned, no partial result is returned.
	ErrTimeout = errors.New("extraction timed out")

	// ErrBackendUnavailable the ML backend could not be reached or gave a
	// malformed reply.
	ErrBackendUnavailable = errors.New("extraction backend unavailable")
)

// ConfigurationError invalid configuration value, rejected synchronously
// at the configuration call. Values are never silently clamped.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}
