// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/backend"
	"github.com/ik5/audplay/formats"
	"github.com/ik5/audplay/internal/logger"
	"github.com/ik5/audplay/pcm"
)

var decoders = formats.NewDefaultRegistry()

// Play drives one decoder into one sink until the stream ends, ctx is
// cancelled, or either side fails.
//
// Play calls sink.Start, writes every non-empty packet in order, and calls
// sink.Stop on every path out, including Start failure. Reaching the end
// of the stream returns nil. A nil conv gets a fresh Converter.
//
// Sinks play audio.SampleRate stereo; Play does not resample, so a decoder
// reporting another layout is logged and played as is.
func Play(ctx context.Context, dec audio.Decoder, sink audio.Sink, conv *pcm.Converter) (err error) {
	log := logger.WithComponent("player")

	if conv == nil {
		conv = pcm.NewConverter()
	}

	if info, ok := dec.(audio.StreamInfo); ok {
		if info.SampleRate() != audio.SampleRate || info.Channels() != audio.Channels {
			log.Warn("stream layout differs from the sink, playing without conversion",
				"rate", info.SampleRate(), "channels", info.Channels(),
				"sink_rate", audio.SampleRate, "sink_channels", audio.Channels)
		}
	}

	defer func() {
		if serr := sink.Stop(); serr != nil {
			err = errors.Join(err, fmt.Errorf("stop sink: %w", serr))
		}
	}()

	if err := sink.Start(); err != nil {
		return fmt.Errorf("start sink: %w", err)
	}

	packets := 0
	for {
		if err := ctx.Err(); err != nil {
			log.Debug("playback cancelled", "packets", packets)
			return err
		}

		p, err := dec.NextPacket()
		if errors.Is(err, io.EOF) {
			log.Debug("end of stream", "packets", packets)
			return nil
		}
		if err != nil {
			return err
		}

		if p.Empty() {
			continue
		}

		if err := sink.Write(p, conv); err != nil {
			return fmt.Errorf("write packet %d: %w", packets, err)
		}
		packets++
	}
}

// OpenSink opens a sink on the named backend ("" for the default) with a
// format name such as "S24_3".
func OpenSink(name, device, format string) (audio.Sink, error) {
	f, err := pcm.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return backend.Open(name, device, f)
}

// OpenDecoder decodes r with the named strategy (see package formats).
func OpenDecoder(kind string, r io.Reader) (audio.Decoder, error) {
	return decoders.Open(kind, r)
}

// OpenFile opens path and decodes it. An empty kind is picked from the
// file extension. Closing the decoder closes the file.
func OpenFile(path, kind string) (audio.Decoder, error) {
	if kind == "" {
		k, err := formats.ForFile(path)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	if _, ok := decoders.Get(kind); !ok {
		return nil, fmt.Errorf("%w: %q", formats.ErrUnknownDecoder, kind)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec, err := OpenDecoder(kind, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return dec, nil
}
