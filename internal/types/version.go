package types

import "fmt"

// Version is the major revision of an ID3v2 tag (the "x" in ID3v2.x).
type Version byte

const (
	// V22 is ID3v2.2: 3-character frame identifiers, no frame flags.
	V22 Version = 2
	// V23 is ID3v2.3: plain 32-bit frame sizes, '/'-joined legacy text.
	V23 Version = 3
	// V24 is ID3v2.4: synchsafe frame sizes, NUL-separated text values.
	V24 Version = 4
)

// String returns the version in "ID3v2.x" form.
func (v Version) String() string {
	return fmt.Sprintf("ID3v2.%d", byte(v))
}

// Valid reports whether v is a revision this module can read.
func (v Version) Valid() bool {
	return v >= V22 && v <= V24
}

// Legacy reports whether v predates multi-value text frames.
func (v Version) Legacy() bool {
	return v < V24
}
