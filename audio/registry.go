// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sync"
)

// Backend is a named sink constructor.
type Backend struct {
	Name string
	Open Opener
}

// Registry is an ordered list of backends. The first entry is the default.
type Registry struct {
	backends []Backend

	mtx *sync.Mutex
}

func NewRegistry(backends ...Backend) *Registry {
	return &Registry{
		backends: append([]Backend(nil), backends...),
		mtx:      &sync.Mutex{},
	}
}

// Register appends a backend. Registering a name twice panics.
func (r *Registry) Register(name string, open Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, b := range r.backends {
		if b.Name == name {
			panic(fmt.Sprintf("audio: backend %q registered twice", name))
		}
	}
	r.backends = append(r.backends, Backend{Name: name, Open: open})
}

// Find returns the opener registered as name (case-sensitive). An empty
// name selects the first registered backend.
//
// Find panics with ErrNoBackends if the registry is empty and no name
// was given.
func (r *Registry) Find(name string) (Opener, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if name == "" {
		if len(r.backends) == 0 {
			panic(ErrNoBackends)
		}
		return r.backends[0].Open, nil
	}

	for _, b := range r.backends {
		if b.Name == name {
			return b.Open, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrBackendNotFound, name)
}

// Names lists the registered backends in order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, len(r.backends))
	for i, b := range r.backends {
		names[i] = b.Name
	}
	return names
}
