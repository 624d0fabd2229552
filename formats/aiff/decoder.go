// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/internal/pcmfile"
)

// Decoder decodes an AIFF file into audio.Samples packets.
type Decoder = pcmfile.Decoder

// New parses the FORM header of r. go-audio requires io.ReadSeeker, so
// other readers are buffered in memory.
func New(r io.Reader) (*Decoder, error) {
	return pcmfile.New(audio.KindAIFF, r, open)
}

func open(rs io.ReadSeeker) (pcmfile.Stream, int, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotAiffFile
	}

	dec.ReadInfo()

	return dec, int(dec.BitDepth), nil
}
