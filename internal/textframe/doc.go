// Package textframe decodes and encodes ID3v2 text information frames.
//
// Text frames (identifiers starting with 'T') carry one or more strings.
// How those strings are laid out depends on the tag revision:
//
//   - ID3v2.4 separates values with the encoding's NUL terminator.
//   - ID3v2.2 and 2.3 store a single string. Performer-style frames
//     (TCOM, TEXT, TOLY, TOPE, TPE1-TPE4) join values with '/', and TCON
//     wraps numeric genre codes in parentheses: "(17)Rock".
//   - TXXX always uses the ID3v2.4 layout, its first value being the
//     description that keys the frame.
//
// # Lazy decoding
//
// Frames read from a tag keep their raw field bytes until a value or the
// encoding is first read. A frame that is never inspected renders back to
// the same bytes at its original version without being re-encoded. Once
// decoded, or once values are replaced, the raw bytes are gone for good.
//
// Decode errors (an empty field, an unknown encoding byte) are reported by
// the first accessor that needs the values, never by Parse.
//
// # Downgrading TDRC
//
// ID3v2.3 has no recording-time frame. Rendering TDRC at version 3 emits
// TYER, TDAT and (when a time is present) TIME frames instead.
//
// Frames are not safe for concurrent use. The first read mutates the frame,
// so even concurrent readers must synchronise.
package textframe
