// SPDX-License-Identifier: EPL-2.0

//go:build !nooto

package backend

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/pcm"
)

// drainTimeout bounds how long Stop waits for queued audio to play out.
const drainTimeout = 5 * time.Second

func init() {
	register(rankOto, "oto", openOto)
}

// oto allows a single context per process, so its format is fixed by the
// first sink that starts.
var (
	otoMtx    sync.Mutex
	otoCtx    *oto.Context
	otoFormat pcm.Format
)

func otoContext(format pcm.Format) (*oto.Context, error) {
	otoMtx.Lock()
	defer otoMtx.Unlock()

	if otoCtx != nil {
		if format != otoFormat {
			return nil, fmt.Errorf("%w: oto already running as %s", audio.ErrUnsupportedFormat, otoFormat)
		}
		return otoCtx, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   audio.SampleRate,
		ChannelCount: audio.Channels,
		Format:       otoSampleFormat(format),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	otoCtx = ctx
	otoFormat = format
	return ctx, nil
}

func otoSampleFormat(format pcm.Format) oto.Format {
	if format == pcm.F32 {
		return oto.FormatFloat32LE
	}
	return oto.FormatSignedInt16LE
}

// otoSink plays through the system audio device. A pipe feeds the player
// so writes block while the device catches up.
type otoSink struct {
	format pcm.Format

	pw     *io.PipeWriter
	player *oto.Player
}

func openOto(device string, format pcm.Format) (audio.Sink, error) {
	if format != pcm.F32 && format != pcm.S16 {
		return nil, fmt.Errorf("%w: oto plays F32 or S16, not %s", audio.ErrUnsupportedFormat, format)
	}
	if device != "" {
		log().Warn("oto uses the default output device, ignoring device", "device", device)
	}

	return &otoSink{format: format}, nil
}

func (s *otoSink) Start() error {
	ctx, err := otoContext(s.format)
	if err != nil {
		return err
	}

	pr, pw := io.Pipe()
	s.pw = pw
	s.player = ctx.NewPlayer(pr)
	s.player.Play()

	log().Debug("oto sink started", "format", s.format)
	return nil
}

func (s *otoSink) Stop() error {
	if s.pw == nil {
		return nil
	}

	s.pw.Close()

	deadline := time.Now().Add(drainTimeout)
	for s.player.IsPlaying() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	err := s.player.Close()
	s.pw, s.player = nil, nil

	if err != nil {
		return fmt.Errorf("close oto player: %w", err)
	}

	log().Debug("oto sink stopped")
	return nil
}

func (s *otoSink) Write(p audio.Packet, c *pcm.Converter) error {
	if _, ok := audio.AsOggData(p); ok {
		return fmt.Errorf("%w: oto plays decoded samples only", audio.ErrCompressedPacket)
	}
	return audio.WriteBytes(s, s.format, p, c)
}

func (s *otoSink) WriteBytes(data []byte) error {
	if s.pw == nil {
		return audio.ErrNotStarted
	}
	if _, err := s.pw.Write(data); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}
	return nil
}
