// Package errs defines the sentinel errors shared by idxset packages.
//
// Callers match them with errors.Is; packages wrap them with additional
// context using fmt.Errorf and %w.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize is returned when a buffer is shorter than the fixed IDX header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidImageSize is returned when an image header describes a plane too large to address.
	ErrInvalidImageSize = errors.New("invalid image size")

	// ErrUnsupportedCompression is returned for an unknown source compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")

	// ErrUnsupportedScheme is returned when no fetcher is registered for a remote URL scheme.
	ErrUnsupportedScheme = errors.New("unsupported remote scheme")

	// ErrInvalidRemote is returned when a remote location cannot be parsed.
	ErrInvalidRemote = errors.New("invalid remote location")

	// ErrUnexpectedStatus is returned when a download responds with a non-success status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrInvalidConfig is returned when a loader or CLI configuration is not runnable.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrClosed is returned when a closed resource is used.
	ErrClosed = errors.New("resource closed")
)
