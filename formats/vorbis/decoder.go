// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audplay/audio"
	"github.com/jfreymuth/oggvorbis"
)

// packetSize is the number of float32 values requested per packet.
const packetSize = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of float32 values written, interleaved.
	Read([]float32) (int, error)
	SetPosition(pos int64) error
}

// Decoder decodes an Ogg Vorbis stream into audio.Samples packets.
type Decoder struct {
	dec        oggReader
	closer     io.Closer
	sampleRate int
	channels   int
	buf        []float32

	eof bool
	err error
}

var _ audio.Decoder = (*Decoder)(nil)

// New reads the Vorbis headers from r. Readers that are not io.ReadSeeker
// are buffered in memory so Seek always works.
func New(r io.Reader) (*Decoder, error) {
	return open(r, newOggReader)
}

func newOggReader(r io.Reader) (oggReader, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec, nil
}

func open(r io.Reader, newReader func(io.Reader) (oggReader, error)) (*Decoder, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, audio.NewError(audio.KindVorbis, fmt.Errorf("reading ogg data: %w", err))
		}
		rs = bytes.NewReader(data)
	}

	dec, err := newReader(rs)
	if err != nil {
		return nil, audio.NewError(audio.KindVorbis, fmt.Errorf("%w", err))
	}

	d := newDecoder(dec)
	if c, ok := r.(io.Closer); ok {
		d.closer = c
	}
	return d, nil
}

func newDecoder(dec oggReader) *Decoder {
	channels := max(dec.Channels(), 1)

	return &Decoder{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   channels,
		buf:        make([]float32, packetSize-packetSize%channels),
	}
}

func (d *Decoder) SampleRate() int { return d.sampleRate }
func (d *Decoder) Channels() int   { return d.channels }

func (d *Decoder) Seek(ms int64) error {
	if d.err != nil {
		return d.err
	}

	pos := audio.SampleOffset(ms, d.sampleRate)
	if err := d.dec.SetPosition(pos); err != nil {
		d.err = audio.NewError(audio.KindVorbis, fmt.Errorf("seek to %dms: %w", ms, err))
		return d.err
	}

	d.eof = false
	return nil
}

func (d *Decoder) NextPacket() (audio.Packet, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.eof {
		return nil, io.EOF
	}

	n, err := d.dec.Read(d.buf)
	switch {
	case errors.Is(err, io.EOF):
		d.eof = true
	case err != nil:
		d.err = audio.NewError(audio.KindVorbis, fmt.Errorf("%w", err))
	}

	if n == 0 {
		if d.err != nil {
			return nil, d.err
		}
		if d.eof {
			return nil, io.EOF
		}
		return audio.Samples{}, nil
	}

	// The packet outlives d.buf, so it gets its own copy.
	p := make(audio.Samples, n)
	copy(p, d.buf[:n])

	return p, nil
}

func (d *Decoder) Close() error {
	if d.closer == nil {
		return nil
	}
	if err := d.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
