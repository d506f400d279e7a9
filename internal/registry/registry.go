// Package registry maps frame identifiers to the factories that build
// frames from raw field bytes.
package registry

import (
	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/types"
)

// Factory builds a frame from its header and field bytes as read under
// version v. Factories must not decode eagerly; reading a tag should stay
// cheap and side-effect free.
type Factory func(h frame.Header, data []byte, v types.Version) (frame.Frame, error)

// factories maps exact identifiers to factories.
var factories = make(map[string]Factory)

// prefixes maps single-character identifier classes ("T", "W") to factories.
var prefixes = make(map[byte]Factory)

// Register registers a factory for an exact frame identifier.
// This is called by frame packages during initialization (init functions).
func Register(id string, f Factory) {
	factories[id] = f
}

// RegisterPrefix registers a factory for every identifier starting with c
// that has no exact registration.
func RegisterPrefix(c byte, f Factory) {
	prefixes[c] = f
}

// Get returns the factory for id, preferring an exact registration.
// Returns nil if nothing is registered.
func Get(id string) Factory {
	if f, ok := factories[id]; ok {
		return f
	}
	if id == "" {
		return nil
	}
	return prefixes[id[0]]
}

// Build constructs a frame for h using the registered factory, falling
// back to an opaque frame.Raw.
func Build(h frame.Header, data []byte, v types.Version) (frame.Frame, error) {
	if f := Get(h.ID); f != nil {
		return f(h, data, v)
	}
	return &frame.Raw{Header: h, Data: data}, nil
}
