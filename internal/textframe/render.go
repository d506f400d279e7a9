package textframe

import (
	"strconv"
	"strings"

	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/textcodec"
	"github.com/simonhull/id3text/internal/types"
)

// RenderFields returns the frame's field bytes (encoding byte followed by
// the encoded text) for version v. A frame still holding raw bytes read
// under v returns them untouched; the result must not be modified.
func (f *TextFrame) RenderFields(v types.Version) ([]byte, error) {
	if s, ok := f.fields.(*undecoded); ok && s.version == v {
		return s.data, nil
	}
	d, err := f.decode()
	if err != nil {
		return nil, err
	}
	return renderFields(f.header.ID, d.values, d.encoding, v), nil
}

// Render returns the complete frame for version v. TDRC rendered for
// ID3v2.3 comes back as TYER, TDAT and TIME frames when its text holds a
// recognisable date.
func (f *TextFrame) Render(v types.Version) ([]byte, error) {
	if f.header.ID == RecordingTimeID && v == types.V23 {
		out, ok, err := f.renderLegacyDate()
		if err != nil || ok {
			return out, err
		}
	}

	fields, err := f.RenderFields(v)
	if err != nil {
		return nil, err
	}
	return f.header.Wrap(fields, v)
}

type datePart struct {
	id    string
	value string
}

// renderLegacyDate splits "YYYY-MM-DDTHH:MM..." into its ID3v2.3 frames.
// ok is false when the text is too short or lacks the date separators.
func (f *TextFrame) renderLegacyDate() (out []byte, ok bool, err error) {
	d, err := f.decode()
	if err != nil {
		return nil, false, err
	}
	text := []rune(strings.Join(d.values, "; "))
	if len(text) < 10 || text[4] != '-' || text[7] != '-' {
		return nil, false, nil
	}

	// TDAT is written month first.
	parts := []datePart{
		{YearID, string(text[0:4])},
		{DateID, string(text[5:7]) + string(text[8:10])},
	}
	if len(text) >= 16 && text[10] == 'T' && text[13] == ':' {
		parts = append(parts, datePart{TimeID, string(text[11:13]) + string(text[14:16])})
	}

	for _, p := range parts {
		sub := New(p.id, d.encoding)
		sub.SetValues([]string{p.value})
		b, err := sub.Render(types.V23)
		if err != nil {
			return nil, false, err
		}
		out = append(out, b...)
	}
	return out, true, nil
}

// renderFields encodes values for version v. Legacy versions hold a single
// string, so multiple values are joined the way the frame type expects.
func renderFields(id string, values []string, enc textcodec.Encoding, v types.Version) []byte {
	enc = effectiveEncoding(enc, values, v)
	out := []byte{byte(enc)}

	if !v.Legacy() || id == UserTextID {
		n := len(values)
		if id == UserTextID {
			// description and at least one value, even if both are absent
			n = max(n, 2)
		}
		delim := textcodec.Delimiter(enc)
		for i := range n {
			if i > 0 {
				out = append(out, delim...)
			}
			if i < len(values) {
				out = append(out, textcodec.Encode(values[i], enc)...)
			}
		}
		return out
	}

	var text string
	if id == GenreID {
		text = joinGenres(values)
	} else {
		text = strings.Join(values, "/")
	}
	return append(out, textcodec.Encode(text, enc)...)
}

// joinGenres writes numeric genre codes as "(N)" and everything else
// verbatim, with no separator.
func joinGenres(values []string) string {
	var sb strings.Builder
	for _, s := range values {
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			sb.WriteByte('(')
			sb.WriteString(strconv.FormatUint(n, 10))
			sb.WriteByte(')')
			continue
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// effectiveEncoding corrects enc for v and widens Latin1 when a value
// holds characters outside ISO-8859-1.
func effectiveEncoding(enc textcodec.Encoding, values []string, v types.Version) textcodec.Encoding {
	enc = frame.CorrectEncoding(enc, v)
	if enc != textcodec.Latin1 {
		return enc
	}
	for _, s := range values {
		if !textcodec.Representable(s, textcodec.Latin1) {
			if v.Legacy() {
				return textcodec.UTF16
			}
			return textcodec.UTF8
		}
	}
	return enc
}
