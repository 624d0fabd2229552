// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/formats/aiff"
	"github.com/ik5/audplay/formats/mp3"
	"github.com/ik5/audplay/formats/passthrough"
	"github.com/ik5/audplay/formats/vorbis"
	"github.com/ik5/audplay/formats/wav"
)

// Decoding strategy names.
const (
	Vorbis      = "vorbis"
	Passthrough = "passthrough"
	MP3         = "mp3"
	WAV         = "wav"
	AIFF        = "aiff"
)

var (
	// ErrUnknownDecoder indicates no strategy is registered under a name
	ErrUnknownDecoder = errors.New("unknown decoder")

	// ErrUnknownExtension indicates a file extension with no default strategy
	ErrUnknownExtension = errors.New("unknown file extension")
)

// Opener constructs a Decoder reading from r.
type Opener func(r io.Reader) (audio.Decoder, error)

// Registry for decoders by strategy name (e.g., "vorbis", "mp3").
type Registry struct {
	openers map[string]Opener

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[string]Opener),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, open Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.openers[name] = open
}

func (r *Registry) Get(name string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	open, ok := r.openers[name]
	return open, ok
}

// Names lists the registered strategies, sorted.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.openers))
	for name := range r.openers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Open decodes r with the strategy registered as name.
func (r *Registry) Open(name string, rd io.Reader) (audio.Decoder, error) {
	open, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDecoder, name)
	}
	return open(rd)
}

// NewDefaultRegistry returns a registry holding every strategy in this module.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Vorbis, opener(vorbis.New))
	r.Register(Passthrough, opener(passthrough.New))
	r.Register(MP3, opener(mp3.New))
	r.Register(WAV, opener(wav.New))
	r.Register(AIFF, opener(aiff.New))
	return r
}

// opener adapts a concrete constructor so a failed open yields a nil interface.
func opener[D audio.Decoder](open func(io.Reader) (D, error)) Opener {
	return func(r io.Reader) (audio.Decoder, error) {
		d, err := open(r)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

var extensions = map[string]string{
	".ogg":  Vorbis,
	".oga":  Vorbis,
	".mp3":  MP3,
	".wav":  WAV,
	".wave": WAV,
	".aif":  AIFF,
	".aiff": AIFF,
}

// ForFile returns the default strategy for path based on its extension.
// Ogg files map to Vorbis; passthrough is only used when asked for by name.
func ForFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if name, ok := extensions[ext]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
}
