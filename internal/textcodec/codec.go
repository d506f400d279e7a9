// Package textcodec converts ID3v2 text fields between bytes and strings.
//
// ID3v2 defines four text encodings, selected by a single leading byte in
// every text-bearing frame. Latin1 and UTF8 strings are NUL terminated with
// one byte, the two UTF-16 variants with two.
package textcodec

import (
	"bytes"
	"fmt"
	"iter"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the ID3v2 text encoding byte.
type Encoding byte

const (
	// Latin1 is ISO-8859-1.
	Latin1 Encoding = 0
	// UTF16 is UTF-16 with a byte order mark.
	UTF16 Encoding = 1
	// UTF16BE is UTF-16 big endian without a byte order mark (ID3v2.4 only).
	UTF16BE Encoding = 2
	// UTF8 is UTF-8 (ID3v2.4 only).
	UTF8 Encoding = 3
)

var (
	// UTF-16 without a BOM is read as big endian, same as the tag's
	// other multi-byte fields.
	utf16Decoding   = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	utf16leEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16beEncoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

	// Written UTF-16 is little endian with an FF FE mark.
	utf16BOM = []byte{0xFF, 0xFE}
)

// ParseEncoding validates an encoding byte read from a frame.
func ParseEncoding(b byte) (Encoding, error) {
	e := Encoding(b)
	if !e.Valid() {
		return 0, fmt.Errorf("unknown text encoding 0x%02x", b)
	}
	return e, nil
}

// Valid reports whether e is one of the four defined encodings.
func (e Encoding) Valid() bool {
	return e <= UTF8
}

// String returns a short name for the encoding.
func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "ISO-8859-1"
	case UTF16:
		return "UTF-16"
	case UTF16BE:
		return "UTF-16BE"
	case UTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("Encoding(%d)", byte(e))
	}
}

// DelimiterWidth returns the size of the NUL terminator under e.
func DelimiterWidth(e Encoding) int {
	switch e {
	case UTF16, UTF16BE:
		return 2
	default:
		return 1
	}
}

// Delimiter returns the NUL terminator bytes for e.
func Delimiter(e Encoding) []byte {
	return make([]byte, DelimiterWidth(e))
}

// Decode converts b, encoded under e, into a Go string.
//
// Malformed sequences decode to U+FFFD rather than failing; a dangling
// odd byte in UTF-16 data is dropped.
func Decode(b []byte, e Encoding) string {
	if len(b) == 0 {
		return ""
	}

	switch e {
	case Latin1:
		return decodeWith(charmap.ISO8859_1, b)
	case UTF16:
		return decodeWith(utf16Decoding, evenLength(b))
	case UTF16BE:
		return decodeWith(utf16beEncoding, evenLength(b))
	default:
		if utf8.Valid(b) {
			return string(b)
		}
		return string(bytes.ToValidUTF8(b, []byte("\uFFFD")))
	}
}

// Encode converts s to bytes under e. UTF16 output always starts with a
// byte order mark, even for the empty string.
func Encode(s string, e Encoding) []byte {
	switch e {
	case Latin1:
		return encodeWith(charmap.ISO8859_1, s)
	case UTF16:
		return append(bytes.Clone(utf16BOM), encodeWith(utf16leEncoding, s)...)
	case UTF16BE:
		return encodeWith(utf16beEncoding, s)
	default:
		return []byte(s)
	}
}

// Representable reports whether every rune in s survives encoding under e.
func Representable(s string, e Encoding) bool {
	if e != Latin1 {
		return true
	}
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

// Split yields the strings in b separated by e's NUL delimiter, decoding
// each one lazily. A trailing terminator yields a final empty string;
// an empty buffer yields nothing.
//
// For two-byte encodings the delimiter is only matched on even offsets,
// so a NUL high or low byte inside a code unit never splits a string.
func Split(b []byte, e Encoding) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(b) == 0 {
			return
		}
		width := DelimiterWidth(e)
		rest := b
		for {
			i := indexDelimiter(rest, width)
			if i < 0 {
				yield(Decode(rest, e))
				return
			}
			if !yield(Decode(rest[:i], e)) {
				return
			}
			rest = rest[i+width:]
		}
	}
}

func indexDelimiter(b []byte, width int) int {
	if width == 1 {
		return bytes.IndexByte(b, 0)
	}
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return -1
}

func evenLength(b []byte) []byte {
	if len(b)%2 != 0 {
		return b[:len(b)-1]
	}
	return b
}

func decodeWith(enc encoding.Encoding, b []byte) string {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		// Decoders in use only fail on programmer error; fall back to
		// a lossy byte copy rather than dropping the field.
		return string(bytes.ToValidUTF8(b, []byte("\uFFFD")))
	}
	return string(out)
}

func encodeWith(enc encoding.Encoding, s string) []byte {
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}
