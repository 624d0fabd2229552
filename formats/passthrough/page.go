// SPDX-License-Identifier: EPL-2.0

package passthrough

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	headerSize = 27

	flagBOS = 0x02
)

var capturePattern = []byte("OggS")

// page is one Ogg page. raw holds the page exactly as it was read.
type page struct {
	raw     []byte
	flags   byte
	granule int64
	serial  uint32
	body    []byte

	// packets is the number of packets that end on this page.
	packets int
}

func (p *page) bos() bool { return p.flags&flagBOS != 0 }

// pageReader splits a byte stream into Ogg pages and verifies their checksums.
type pageReader struct {
	br *bufio.Reader
}

func newPageReader(r io.Reader) *pageReader {
	return &pageReader{br: bufio.NewReader(r)}
}

func (pr *pageReader) reset(r io.Reader) {
	pr.br.Reset(r)
}

// next returns the following page. It returns io.EOF only when the stream
// ends exactly on a page boundary.
func (pr *pageReader) next() (*page, error) {
	var header [headerSize]byte

	if _, err := io.ReadFull(pr.br, header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read page header: %w", err)
	}

	if !bytes.Equal(header[:4], capturePattern) {
		return nil, ErrBadCapture
	}
	if header[4] != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header[4])
	}

	segments := int(header[26])
	segTable := make([]byte, segments)
	if _, err := io.ReadFull(pr.br, segTable); err != nil {
		return nil, fmt.Errorf("read segment table: %w", unexpected(err))
	}

	bodyLen, packets := 0, 0
	for _, s := range segTable {
		bodyLen += int(s)
		if s < 255 {
			packets++
		}
	}

	raw := make([]byte, headerSize+segments+bodyLen)
	copy(raw, header[:])
	copy(raw[headerSize:], segTable)

	if _, err := io.ReadFull(pr.br, raw[headerSize+segments:]); err != nil {
		return nil, fmt.Errorf("read page body: %w", unexpected(err))
	}

	want := binary.LittleEndian.Uint32(header[22:26])
	if got := pageChecksum(raw); got != want {
		return nil, fmt.Errorf("%w: got %08x, want %08x", ErrBadChecksum, got, want)
	}

	return &page{
		raw:     raw,
		flags:   header[5],
		granule: int64(binary.LittleEndian.Uint64(header[6:14])),
		serial:  binary.LittleEndian.Uint32(header[14:18]),
		body:    raw[headerSize+segments:],
		packets: packets,
	}, nil
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// crcTable is the Ogg CRC-32: polynomial 0x04c11db7, no reflection,
// zero initial value and no final xor.
var crcTable = func() [256]uint32 {
	var t [256]uint32
	for i := range t {
		r := uint32(i) << 24
		for range 8 {
			if r&0x80000000 != 0 {
				r = r<<1 ^ 0x04c11db7
			} else {
				r <<= 1
			}
		}
		t[i] = r
	}
	return t
}()

// pageChecksum computes the CRC of raw with the checksum field taken as zero.
func pageChecksum(raw []byte) uint32 {
	var crc uint32
	for i, b := range raw {
		if i >= 22 && i < 26 {
			b = 0
		}
		crc = crc<<8 ^ crcTable[byte(crc>>24)^b]
	}
	return crc
}
