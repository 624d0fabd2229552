// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendNotFound is returned when no backend has the requested name.
	ErrBackendNotFound = errors.New("audio backend not found")

	// ErrNoBackends is the panic value of Registry.Find when nothing is registered.
	ErrNoBackends = errors.New("no audio backends were compiled in")

	// ErrNotStarted is returned by sinks written to before Start.
	ErrNotStarted = errors.New("sink not started")

	// ErrUnsupportedFormat is returned by backends that cannot output a format.
	ErrUnsupportedFormat = errors.New("unsupported sample format")

	// ErrCompressedPacket is returned by sinks that cannot take OggData.
	ErrCompressedPacket = errors.New("sink cannot play compressed packets")

	// ErrDeviceRequired is returned by backends that need a device string.
	ErrDeviceRequired = errors.New("backend requires a device")
)

// Kind identifies the decoding strategy an Error came from.
type Kind int

const (
	KindPassthrough Kind = iota + 1
	KindVorbis
	KindMP3
	KindWAV
	KindAIFF
)

func (k Kind) String() string {
	switch k {
	case KindPassthrough:
		return "passthrough"
	case KindVorbis:
		return "vorbis"
	case KindMP3:
		return "mp3"
	case KindWAV:
		return "wav"
	case KindAIFF:
		return "aiff"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a decode fault reported by a Decoder. Err keeps the original
// cause, so errors.Is and errors.As see through it.
type Error struct {
	Kind Kind
	Err  error
}

// NewError wraps err as a decode fault of the given kind.
func NewError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s decoder: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
