package codec

import "errors"

// Sentinel errors returned by the registry and by Codec implementations.
// pi.Codec's Encode always returns ErrUnsupportedFormat, since encoding
// is outside this module's scope.
var (
	// ErrCodecNotFound is returned by Get when no codec is registered
	// under the given name or UID.
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter indicates encode/decode parameters failed
	// validation.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidQuality indicates a quality parameter outside 0-100.
	ErrInvalidQuality = errors.New("invalid quality (must be 0-100)")

	// ErrUnsupportedFormat indicates the operation isn't implemented
	// for this codec.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
