// Package pi implements a decoder for the PI image format, a
// palette-indexed raster format originating on Japanese personal
// computers circa 1990 (Yanagisawa). The package decodes a PI byte
// stream into a rectangular array of palette indices and, via Palette,
// into packed RGBA pixels.
package pi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a decode failure.
type ErrorKind int

const (
	// UnexpectedEnd means the bit stream was exhausted mid-code.
	UnexpectedEnd ErrorKind = iota
	// InvalidPrefix means a variable-length prefix exceeded the
	// longest entry in the active plane count's table.
	InvalidPrefix
	// TruncatedStream means the stream reached EOF before all pixels
	// were produced.
	TruncatedStream
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case InvalidPrefix:
		return "InvalidPrefix"
	case TruncatedStream:
		return "TruncatedStream"
	default:
		return "UnknownErrorKind"
	}
}

// DecodeError is a fatal body-decode failure. It carries the bit
// offset at which it occurred, for diagnostics; there is no
// retry/partial-recovery path inside the core.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pi: %s at bit offset %d", e.Kind, e.Offset)
}

// Unwrap exposes the underlying cause, if any, so callers can walk the
// chain with errors.Is/errors.As.
func (e *DecodeError) Unwrap() error { return e.cause }

func newDecodeError(kind ErrorKind, offset int) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset}
}

// wrapDecodeError annotates a DecodeError with a causal message using
// github.com/pkg/errors, so a caller walking the error chain sees both
// the structured kind/offset and a human-readable trail of what the
// decoder was doing when the failure occurred.
func wrapDecodeError(kind ErrorKind, offset int, format string, args ...any) *DecodeError {
	e := newDecodeError(kind, offset)
	e.cause = errors.Errorf(format, args...)
	return e
}

// Header-parser errors. These are never raised by the core decoder,
// which trusts its Header input (spec §6); they only occur while
// reading the PI container that wraps the body.
var (
	// ErrNotAPiFile is returned when the leading magic bytes are not "Pi".
	ErrNotAPiFile = errors.New("pi: not a PI file (missing \"Pi\" magic)")
	// ErrInvalidPlanes is returned when the plane count is neither 4 nor 8.
	ErrInvalidPlanes = errors.New("pi: invalid plane count (must be 4 or 8)")
	// ErrInvalidDimensions is returned for a zero width or height.
	ErrInvalidDimensions = errors.New("pi: invalid image dimensions")
	// ErrHeaderTruncated is returned when the header ends before a
	// required field can be read.
	ErrHeaderTruncated = errors.New("pi: header truncated")
)
