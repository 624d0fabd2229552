// SPDX-License-Identifier: EPL-2.0

package passthrough

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audplay/audio"
)

// headerPackets is the number of Vorbis header packets (identification,
// comment and setup) a decoder needs before any audio packet.
const headerPackets = 3

// Decoder re-frames an Ogg Vorbis stream into audio.OggData packets, one
// page per packet, without decoding it.
//
// The pages carrying the three Vorbis header packets are delivered first,
// and again after every Seek, so the stream stays decodable from any
// position.
type Decoder struct {
	rs     io.ReadSeeker
	closer io.Closer
	pages  *pageReader

	sampleRate int
	channels   int

	// headers holds the pages carrying the Vorbis header packets.
	headers []*page

	// queue is delivered before any page read after it.
	queue []*page

	eof bool
	err error
}

var _ audio.Decoder = (*Decoder)(nil)

// New reads the header pages of r and checks that they open a Vorbis
// stream. Readers that are not io.ReadSeeker are buffered in memory.
func New(r io.Reader) (*Decoder, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, audio.NewError(audio.KindPassthrough, fmt.Errorf("reading ogg data: %w", err))
		}
		rs = bytes.NewReader(data)
	}

	d := &Decoder{
		rs:    rs,
		pages: newPageReader(rs),
	}
	if c, ok := r.(io.Closer); ok {
		d.closer = c
	}

	if err := d.readHeaders(); err != nil {
		return nil, audio.NewError(audio.KindPassthrough, err)
	}
	d.queue = d.headerQueue()

	return d, nil
}

// readHeaders reads pages until the three header packets of the first
// logical stream are complete.
func (d *Decoder) readHeaders() error {
	first, err := d.pages.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrNotVorbis
		}
		return err
	}

	if err := d.readIdentification(first); err != nil {
		return err
	}

	d.headers = []*page{first}
	packets := first.packets

	for packets < headerPackets {
		p, err := d.pages.next()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %d of %d header packets", ErrIncompleteHeaders, packets, headerPackets)
		}
		if err != nil {
			return err
		}

		d.headers = append(d.headers, p)
		if p.serial == first.serial {
			packets += p.packets
		}
	}

	return nil
}

func (d *Decoder) headerQueue() []*page {
	return append([]*page(nil), d.headers...)
}

// readIdentification takes the rate and channel count from the Vorbis
// identification header carried by the first page.
func (d *Decoder) readIdentification(p *page) error {
	body := p.body
	if !p.bos() || len(body) < 16 || body[0] != 1 || string(body[1:7]) != "vorbis" {
		return ErrNotVorbis
	}

	d.channels = int(body[11])
	d.sampleRate = int(binary.LittleEndian.Uint32(body[12:16]))
	if d.channels == 0 || d.sampleRate == 0 {
		return fmt.Errorf("%w: %d channels at %d Hz", ErrNotVorbis, d.channels, d.sampleRate)
	}

	return nil
}

func (d *Decoder) SampleRate() int { return d.sampleRate }
func (d *Decoder) Channels() int   { return d.channels }

func (d *Decoder) fail(err error) error {
	d.err = audio.NewError(audio.KindPassthrough, err)
	return d.err
}

// Seek rewinds the stream and skips to the first audio page whose granule
// position reaches ms. The header pages are queued ahead of that page.
// Seeking past the last page leaves the decoder at end of stream.
func (d *Decoder) Seek(ms int64) error {
	if d.err != nil {
		return d.err
	}

	target := audio.SampleOffset(ms, d.sampleRate)

	if _, err := d.rs.Seek(0, io.SeekStart); err != nil {
		return d.fail(fmt.Errorf("seek to %dms: %w", ms, err))
	}
	d.pages.reset(d.rs)
	d.queue = nil
	d.eof = false

	for range d.headers {
		if _, err := d.pages.next(); err != nil {
			return d.fail(fmt.Errorf("seek to %dms: %w", ms, unexpected(err)))
		}
	}

	if target == 0 {
		d.queue = d.headerQueue()
		return nil
	}

	for {
		p, err := d.pages.next()
		if errors.Is(err, io.EOF) {
			d.eof = true
			return nil
		}
		if err != nil {
			return d.fail(err)
		}

		// Pages where no packet ends carry granule -1.
		if p.granule >= target {
			d.queue = append(d.headerQueue(), p)
			return nil
		}
	}
}

func (d *Decoder) NextPacket() (audio.Packet, error) {
	if d.err != nil {
		return nil, d.err
	}

	if len(d.queue) > 0 {
		p := d.queue[0]
		d.queue = d.queue[1:]
		return audio.OggData(p.raw), nil
	}

	if d.eof {
		return nil, io.EOF
	}

	p, err := d.pages.next()
	if errors.Is(err, io.EOF) {
		d.eof = true
		return nil, io.EOF
	}
	if err != nil {
		return nil, d.fail(err)
	}

	return audio.OggData(p.raw), nil
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
