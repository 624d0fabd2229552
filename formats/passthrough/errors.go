// SPDX-License-Identifier: EPL-2.0

package passthrough

import "errors"

var (
	// ErrBadCapture indicates the data does not start with an Ogg page
	ErrBadCapture = errors.New("missing OggS capture pattern")

	// ErrUnsupportedVersion indicates an Ogg stream structure version other than 0
	ErrUnsupportedVersion = errors.New("unsupported Ogg version")

	// ErrBadChecksum indicates a page whose CRC does not match its contents
	ErrBadChecksum = errors.New("ogg page checksum mismatch")

	// ErrNotVorbis indicates the first page does not carry a Vorbis identification header
	ErrNotVorbis = errors.New("not an Ogg Vorbis stream")

	// ErrIncompleteHeaders indicates the stream ends before its Vorbis headers do
	ErrIncompleteHeaders = errors.New("ogg vorbis stream ends inside its headers")
)
