// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/internal/pcmfile"
)

// WAVE format tags.
const (
	wavFormatPCM        = 0x0001
	wavFormatExtensible = 0xfffe
)

// extensibleFmtSize is the size of a WAVE_FORMAT_EXTENSIBLE fmt chunk.
const extensibleFmtSize = 40

// pcmSubFormat is the KSDATAFORMAT_SUBTYPE_PCM GUID as stored on disk.
var pcmSubFormat = [16]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71,
}

// Decoder decodes a WAV file into audio.Samples packets.
type Decoder = pcmfile.Decoder

// New parses the RIFF header of r. Readers that are not io.ReadSeeker are
// buffered in memory.
func New(r io.Reader) (*Decoder, error) {
	return pcmfile.New(audio.KindWAV, r, open)
}

func open(rs io.ReadSeeker) (pcmfile.Stream, int, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	switch dec.WavAudioFormat {
	case wavFormatPCM:
	case wavFormatExtensible:
		sub, err := subFormat(rs)
		if err != nil {
			return nil, 0, err
		}
		if sub != pcmSubFormat {
			return nil, 0, fmt.Errorf("%w: extensible sub-format % x", ErrNotPCM, sub)
		}
	default:
		return nil, 0, fmt.Errorf("%w: format tag %#04x", ErrNotPCM, dec.WavAudioFormat)
	}

	return dec, int(dec.BitDepth), nil
}

// subFormat reads the sub-format GUID of an extensible fmt chunk and
// leaves rs where it found it. go-audio/wav skips those bytes.
func subFormat(rs io.ReadSeeker) (sub [16]byte, err error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return sub, fmt.Errorf("%w", err)
	}
	defer func() {
		if _, serr := rs.Seek(pos, io.SeekStart); serr != nil && err == nil {
			err = fmt.Errorf("%w", serr)
		}
	}()

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return sub, fmt.Errorf("%w", err)
	}

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return sub, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	for {
		ch, err := p.NextChunk()
		if errors.Is(err, io.EOF) {
			return sub, fmt.Errorf("%w: no fmt chunk", ErrNotWavFile)
		}
		if err != nil {
			return sub, fmt.Errorf("%w", err)
		}

		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		if ch.Size < extensibleFmtSize {
			return sub, fmt.Errorf("%w: extensible fmt chunk of %d bytes", ErrNotPCM, ch.Size)
		}

		var chunk [extensibleFmtSize]byte
		if _, err := io.ReadFull(ch, chunk[:]); err != nil {
			return sub, fmt.Errorf("read fmt chunk: %w", err)
		}
		copy(sub[:], chunk[24:])
		return sub, nil
	}
}
