// SPDX-License-Identifier: EPL-2.0

package pcmfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audplay/audio"
)

// packetSize is the number of int values requested per packet.
const packetSize = 4096

// ErrUnsupportedBitDepth indicates a sample width other than 16, 24 or 32 bits.
var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// Stream is the part of the go-audio wav and aiff decoders used here.
type Stream interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// OpenFunc parses the container header at the start of rs and returns a
// stream positioned before the first sample, along with its bit depth.
type OpenFunc func(rs io.ReadSeeker) (Stream, int, error)

// Decoder turns an integer PCM container into audio.Samples packets.
type Decoder struct {
	kind   audio.Kind
	open   OpenFunc
	rs     io.ReadSeeker
	closer io.Closer
	stream Stream

	sampleRate int
	channels   int
	scale      float32
	buf        *goaudio.IntBuffer

	eof bool
	err error
}

var _ audio.Decoder = (*Decoder)(nil)

// New opens r with open. Readers that are not io.ReadSeeker are buffered in
// memory, since go-audio needs to seek between chunks.
func New(kind audio.Kind, r io.Reader, open OpenFunc) (*Decoder, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, audio.NewError(kind, fmt.Errorf("reading %s data: %w", kind, err))
		}
		rs = bytes.NewReader(data)
	}

	d := &Decoder{kind: kind, open: open, rs: rs}
	if c, ok := r.(io.Closer); ok {
		d.closer = c
	}

	if err := d.reopen(); err != nil {
		return nil, audio.NewError(kind, err)
	}

	return d, nil
}

func (d *Decoder) reopen() error {
	stream, bitDepth, err := d.open(d.rs)
	if err != nil {
		return err
	}

	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := stream.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return fmt.Errorf("invalid format %+v", format)
	}

	d.stream = stream
	d.sampleRate = format.SampleRate
	d.channels = format.NumChannels
	d.scale = float32(int64(1) << (bitDepth - 1))
	d.buf = &goaudio.IntBuffer{
		Format:         format,
		Data:           make([]int, packetSize-packetSize%d.channels),
		SourceBitDepth: bitDepth,
	}

	return nil
}

func (d *Decoder) SampleRate() int { return d.sampleRate }
func (d *Decoder) Channels() int   { return d.channels }

func (d *Decoder) fail(err error) error {
	d.err = audio.NewError(d.kind, err)
	return d.err
}

// Seek reparses the container from the start and discards samples up to ms.
func (d *Decoder) Seek(ms int64) error {
	if d.err != nil {
		return d.err
	}

	if _, err := d.rs.Seek(0, io.SeekStart); err != nil {
		return d.fail(fmt.Errorf("seek to %dms: %w", ms, err))
	}
	if err := d.reopen(); err != nil {
		return d.fail(fmt.Errorf("seek to %dms: %w", ms, err))
	}
	d.eof = false

	frames := audio.SampleOffset(ms, d.sampleRate)
	skip := min(frames, math.MaxInt64/int64(d.channels)) * int64(d.channels)
	data := d.buf.Data
	defer func() { d.buf.Data = data }()

	for skip > 0 {
		d.buf.Data = data[:min(int64(len(data)), skip)]

		n, err := d.stream.PCMBuffer(d.buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return d.fail(fmt.Errorf("seek to %dms: %w", ms, err))
		}
		if n == 0 || errors.Is(err, io.EOF) {
			d.eof = true
			return nil
		}
		skip -= int64(n)
	}

	return nil
}

func (d *Decoder) NextPacket() (audio.Packet, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.eof {
		return nil, io.EOF
	}

	n, err := d.stream.PCMBuffer(d.buf)
	switch {
	case errors.Is(err, io.EOF):
		d.eof = true
	case err != nil:
		d.fail(err)
	}

	if n == 0 {
		if d.err != nil {
			return nil, d.err
		}
		// go-audio reports the end of data as a zero-length read.
		d.eof = true
		return nil, io.EOF
	}

	p := make(audio.Samples, n)
	for i, v := range d.buf.Data[:n] {
		p[i] = float32(v) / d.scale
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
