// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/audplay/audio"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	called := false
	registry.Register("fake", func(io.Reader) (audio.Decoder, error) {
		called = true
		return nil, nil
	})

	open, ok := registry.Get("fake")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered opener")
	}
	open(nil)
	if !called {
		t.Error("Registry.Get() returned a different opener")
	}

	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Registry.Get() returned ok=true for a missing name")
	}
}

func TestRegistry_OverwriteExisting(t *testing.T) {
	t.Parallel()

	errFirst := errors.New("first")
	errSecond := errors.New("second")

	registry := NewRegistry()
	registry.Register("x", func(io.Reader) (audio.Decoder, error) { return nil, errFirst })
	registry.Register("x", func(io.Reader) (audio.Decoder, error) { return nil, errSecond })

	if _, err := registry.Open("x", nil); !errors.Is(err, errSecond) {
		t.Errorf("Open() error = %v, want the second opener's error", err)
	}
}

func TestRegistry_OpenUnknown(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().Open("flac", bytes.NewReader(nil))
	if !errors.Is(err, ErrUnknownDecoder) {
		t.Errorf("Open() error = %v, want ErrUnknownDecoder", err)
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	want := []string{AIFF, MP3, Passthrough, Vorbis, WAV}
	if got := NewDefaultRegistry().Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNewDefaultRegistry_ErrorKinds(t *testing.T) {
	t.Parallel()

	reg := NewDefaultRegistry()
	garbage := []byte("this is not audio data of any known kind")

	tests := []struct {
		name string
		kind audio.Kind
	}{
		{Vorbis, audio.KindVorbis},
		{Passthrough, audio.KindPassthrough},
		{MP3, audio.KindMP3},
		{WAV, audio.KindWAV},
		{AIFF, audio.KindAIFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := reg.Open(tt.name, bytes.NewReader(garbage))

			var audioErr *audio.Error
			if !errors.As(err, &audioErr) {
				t.Fatalf("Open() error = %v, want *audio.Error", err)
			}
			if audioErr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", audioErr.Kind, tt.kind)
			}
		})
	}
}

func TestForFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"song.ogg", Vorbis},
		{"/tmp/Song.OGG", Vorbis},
		{"a.oga", Vorbis},
		{"track.mp3", MP3},
		{"take1.wav", WAV},
		{"loop.aif", AIFF},
		{"loop.aiff", AIFF},
	}

	for _, tt := range tests {
		got, err := ForFile(tt.path)
		if err != nil {
			t.Errorf("ForFile(%q) error = %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ForFile(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	for _, path := range []string{"song.flac", "README", ""} {
		if _, err := ForFile(path); !errors.Is(err, ErrUnknownExtension) {
			t.Errorf("ForFile(%q) error = %v, want ErrUnknownExtension", path, err)
		}
	}
}
