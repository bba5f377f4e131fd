// Package errs defines the three error kinds surfaced by the image
// pipeline core (see spec §7): UnsupportedFormat, BadGeometry, and
// ContractViolation. Callers should use errors.Is against the sentinels
// here rather than string-matching messages.
package errs

import "github.com/pkg/errors"

// Sentinel error kinds. Wrap with errors.Wrapf/Wrap from github.com/pkg/errors
// to add context; errors.Is(err, ErrUnsupportedFormat) still succeeds because
// pkg/errors preserves the wrapped chain for the standard errors.Is/As.
var (
	// ErrUnsupportedFormat means a FourCC, pixel format, or (input, output)
	// pair is not in the closed set this core implements.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrBadGeometry means a dimension constraint was violated: a
	// non-multiple macropixel width, odd YUYV width, an output stream
	// larger than its input, or a malformed fixed-length record.
	ErrBadGeometry = errors.New("bad geometry")

	// ErrContractViolation means an internal precondition was violated by
	// the caller, e.g. invoking a codec against a mode it does not
	// implement. Preconditions here are caller-checked; violating them is
	// a programmer error, not a runtime condition to recover from.
	ErrContractViolation = errors.New("contract violation")
)

// Unsupportedf wraps ErrUnsupportedFormat with a formatted message.
func Unsupportedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnsupportedFormat, format, args...)
}

// BadGeometryf wraps ErrBadGeometry with a formatted message.
func BadGeometryf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrBadGeometry, format, args...)
}

// ContractViolationf panics with a message wrapping ErrContractViolation.
// Codec entry points call this when invoked against a mode or buffer set
// they do not implement; such calls are programmer errors,
// not conditions a caller can recover from at runtime.
func ContractViolationf(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrContractViolation, format, args...))
}
