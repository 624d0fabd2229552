// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/internal/logger"
	"github.com/ik5/audplay/pcm"
)

// Ranks order the compiled-in backends. The lowest rank is the default.
const (
	rankOto        = 10
	rankPipe       = 20
	rankSubprocess = 30
	rankWAV        = 40
)

type entry struct {
	rank int
	name string
	open audio.Opener
}

var (
	mtx     sync.Mutex
	entries []entry

	buildOnce sync.Once
	registry  *audio.Registry
)

// register adds a backend. It is called from init in each backend file.
func register(rank int, name string, open audio.Opener) {
	mtx.Lock()
	defer mtx.Unlock()

	entries = append(entries, entry{rank: rank, name: name, open: open})
}

// Registry returns the compiled-in backends, default first.
func Registry() *audio.Registry {
	buildOnce.Do(func() {
		mtx.Lock()
		defer mtx.Unlock()

		sorted := slices.Clone(entries)
		slices.SortStableFunc(sorted, func(a, b entry) int { return a.rank - b.rank })

		registry = audio.NewRegistry()
		for _, e := range sorted {
			registry.Register(e.name, e.open)
		}
	})
	return registry
}

// Find returns the opener for name, or the default backend for "".
func Find(name string) (audio.Opener, error) {
	return Registry().Find(name)
}

// Names lists the compiled-in backends, default first.
func Names() []string {
	return Registry().Names()
}

// Open finds a backend and opens a sink on device in format.
func Open(name, device string, format pcm.Format) (audio.Sink, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %v", pcm.ErrUnknownFormat, format)
	}

	open, err := Find(name)
	if err != nil {
		return nil, err
	}

	sink, err := open(device, format)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", displayName(name), err)
	}
	return sink, nil
}

func displayName(name string) string {
	if name == "" {
		return "default"
	}
	return name
}

func log() *slog.Logger {
	return logger.WithComponent("backend")
}
