package position

import (
	"errors"
	"fmt"
)

var (
	// ErrCapabilityUnavailable means the environment has no way to locate
	// the user at all.
	ErrCapabilityUnavailable = errors.New("geolocation is not supported by this environment")

	// ErrAcquisitionFailed is matched by every *AcquisitionError.
	ErrAcquisitionFailed = errors.New("position acquisition failed")
)

// Reasons an environment gives for not producing a position.
const (
	ReasonDenied      = "permission denied"
	ReasonUnavailable = "position unavailable"
	ReasonTimeout     = "timeout"
)

// AcquisitionError is reported when the environment tried to locate the user
// and failed.
type AcquisitionError struct {
	Reason  string
	Message string
	Err     error
}

func (e *AcquisitionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", ErrAcquisitionFailed, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrAcquisitionFailed, e.Reason, e.Message)
}

func (e *AcquisitionError) Is(target error) bool {
	return target == ErrAcquisitionFailed
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
