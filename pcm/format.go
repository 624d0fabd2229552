// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
var ErrUnknownFormat = errors.New("unknown sample format")

// Format is the sample representation an output device requires.
type Format int

const (
	// F32 is 32-bit little-endian IEEE float.
	F32 Format = iota
	// S32 is signed 32-bit little-endian.
	S32
	// S24 is signed 24-bit, sign-extended in a 4-byte little-endian word.
	S24
	// S24Packed3 is signed 24-bit packed in exactly 3 little-endian bytes.
	S24Packed3
	// S16 is signed 16-bit little-endian.
	S16
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = S16

var formatNames = [...]string{
	F32:        "F32",
	S32:        "S32",
	S24:        "S24",
	S24Packed3: "S24_3",
	S16:        "S16",
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Valid reports whether f is one of the defined formats.
func (f Format) Valid() bool {
	return f >= F32 && f <= S16
}

// SampleSize is the number of bytes one sample takes on the wire.
func (f Format) SampleSize() int {
	switch f {
	case F32, S32, S24:
		return 4
	case S24Packed3:
		return 3
	case S16:
		return 2
	default:
		return 0
	}
}

// BitDepth is the number of significant bits of the format.
func (f Format) BitDepth() int {
	switch f {
	case F32, S32:
		return 32
	case S24, S24Packed3:
		return 24
	case S16:
		return 16
	default:
		return 0
	}
}

// ParseFormat maps a configuration string such as "S24_3" to a Format.
// Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
