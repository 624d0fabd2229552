// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audplay/pcm"
)

// ByteSink is implemented by backends that only need to transmit a flat
// byte buffer. Their Write method is usually a call to WriteBytes.
type ByteSink interface {
	WriteBytes(data []byte) error
}

// WriteBytes is the Write logic shared by every ByteSink.
//
// Samples are converted to format with c (F32 is only serialized) and
// OggData is passed through unmodified. A nil packet is a programming
// error and panics.
func WriteBytes(s ByteSink, format pcm.Format, p Packet, c *pcm.Converter) error {
	switch p := p.(type) {
	case Samples:
		return s.WriteBytes(c.Bytes(format, p))
	case OggData:
		return s.WriteBytes(p)
	default:
		panic(fmt.Sprintf("audio: unexpected packet %T", p))
	}
}
