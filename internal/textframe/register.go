package textframe

import (
	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/registry"
	"github.com/simonhull/id3text/internal/types"
)

func init() {
	registry.RegisterPrefix('T', func(h frame.Header, data []byte, v types.Version) (frame.Frame, error) {
		return Parse(h, data, v), nil
	})
	registry.Register(UserTextID, func(h frame.Header, data []byte, v types.Version) (frame.Frame, error) {
		return ParseUser(h, data, v), nil
	})
}

var (
	_ frame.Frame = (*TextFrame)(nil)
	_ frame.Frame = (*UserTextFrame)(nil)
)
