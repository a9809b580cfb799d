// SPDX-License-Identifier: EPL-2.0

package pixel

import (
	"io"
	"sync"
)

// Decoder constructs a Grid from an encoded image stream.
type Decoder interface {
	Decode(r io.Reader) (*Grid, error)
}

// Registry for decoders by format key (e.g., "png", "jpeg", "bmp").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
