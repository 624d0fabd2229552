// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audplay/audio"
)

const (
	// go-mp3 always produces 16-bit little-endian stereo.
	channels    = 2
	bytesPerVal = 2
	frameBytes  = channels * bytesPerVal

	// packetBytes is the amount of decoded PCM read per packet.
	packetBytes = 8192
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	SampleRate() int
}

// Decoder decodes an MP3 stream into audio.Samples packets.
type Decoder struct {
	dec        mp3Reader
	closer     io.Closer
	sampleRate int
	buf        []byte

	// carry holds a trailing odd byte from the previous read.
	carry []byte

	eof bool
	err error
}

var _ audio.Decoder = (*Decoder)(nil)

// New parses the first MP3 frame of r. Readers that are not io.ReadSeeker
// are buffered in memory so Seek always works.
func New(r io.Reader) (*Decoder, error) {
	return open(r, newMP3Reader)
}

func newMP3Reader(r io.Reader) (mp3Reader, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	return dec, nil
}

func open(r io.Reader, newReader func(io.Reader) (mp3Reader, error)) (*Decoder, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, audio.NewError(audio.KindMP3, fmt.Errorf("reading mp3 data: %w", err))
		}
		rs = bytes.NewReader(data)
	}

	dec, err := newReader(rs)
	if err != nil {
		return nil, audio.NewError(audio.KindMP3, fmt.Errorf("%w", err))
	}

	d := newDecoder(dec)
	if c, ok := r.(io.Closer); ok {
		d.closer = c
	}
	return d, nil
}

func newDecoder(dec mp3Reader) *Decoder {
	return &Decoder{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, packetBytes),
	}
}

func (d *Decoder) SampleRate() int { return d.sampleRate }
func (d *Decoder) Channels() int   { return channels }

func (d *Decoder) Seek(ms int64) error {
	if d.err != nil {
		return d.err
	}

	frames := audio.SampleOffset(ms, d.sampleRate)
	offset := min(frames, math.MaxInt64/frameBytes) * frameBytes
	if _, err := d.dec.Seek(offset, io.SeekStart); err != nil {
		d.err = audio.NewError(audio.KindMP3, fmt.Errorf("seek to %dms: %w", ms, err))
		return d.err
	}

	d.carry = d.carry[:0]
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

	n := copy(d.buf, d.carry)
	d.carry = d.carry[:0]

	read, err := d.dec.Read(d.buf[n:])
	n += read

	switch {
	case errors.Is(err, io.EOF):
		d.eof = true
	case err != nil:
		d.err = audio.NewError(audio.KindMP3, fmt.Errorf("%w", err))
	}

	whole := n - n%bytesPerVal
	if whole < n {
		d.carry = append(d.carry, d.buf[whole:n]...)
	}

	if whole == 0 {
		if d.err != nil {
			return nil, d.err
		}
		if d.eof {
			return nil, io.EOF
		}
		return audio.Samples{}, nil
	}

	p := make(audio.Samples, whole/bytesPerVal)
	for i := range p {
		v := int16(binary.LittleEndian.Uint16(d.buf[i*bytesPerVal:]))
		p[i] = float32(v) / 32768.0
	}

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
