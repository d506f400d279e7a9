package textframe

import (
	"slices"
	"strings"

	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/textcodec"
	"github.com/simonhull/id3text/internal/types"
)

// Identifiers with structural meaning to the codec.
const (
	UserTextID      = "TXXX"
	GenreID         = "TCON"
	RecordingTimeID = "TDRC"
	YearID          = "TYER"
	DateID          = "TDAT"
	TimeID          = "TIME"
)

// DefaultEncoding is used when values replace raw fields whose encoding
// byte is unusable.
const DefaultEncoding = textcodec.UTF8

// fields is the frame's field state: either still-encoded bytes or decoded values.
type fields interface {
	isFields()
}

// undecoded holds field bytes exactly as read, plus the tag version they
// were read under.
type undecoded struct {
	data    []byte
	version types.Version
}

type decoded struct {
	values   []string
	encoding textcodec.Encoding
}

func (*undecoded) isFields() {}
func (*decoded) isFields()   {}

// TextFrame is a text information frame holding an ordered list of values.
type TextFrame struct {
	header frame.Header
	fields fields
}

// New returns an empty frame with the given identifier and encoding.
func New(id string, enc textcodec.Encoding) *TextFrame {
	return &TextFrame{
		header: frame.NewHeader(id),
		fields: &decoded{encoding: enc},
	}
}

// Parse wraps field bytes read under version v. Nothing is decoded until
// the values are needed. data is retained, not copied.
func Parse(h frame.Header, data []byte, v types.Version) *TextFrame {
	return &TextFrame{
		header: h,
		fields: &undecoded{data: data, version: v},
	}
}

// ID returns the frame identifier.
func (f *TextFrame) ID() string {
	return f.header.ID
}

// Header returns the frame envelope.
func (f *TextFrame) Header() frame.Header {
	return f.header
}

// Decoded reports whether the frame has left its raw state.
func (f *TextFrame) Decoded() bool {
	_, raw := f.fields.(*undecoded)
	return !raw
}

// Decode forces the lazy decode. It is a no-op on decoded frames.
func (f *TextFrame) Decode() error {
	_, err := f.decode()
	return err
}

// Validate reports the error the first decode would return, without
// leaving the raw state.
func (f *TextFrame) Validate() error {
	if s, ok := f.fields.(*undecoded); ok {
		_, err := parseFields(f.header.ID, s.data, s.version)
		return err
	}
	return nil
}

// Values returns a copy of the frame's values.
func (f *TextFrame) Values() ([]string, error) {
	d, err := f.decode()
	if err != nil {
		return nil, err
	}
	return slices.Clone(d.values), nil
}

// SetValues replaces the frame's values and drops any raw field bytes.
func (f *TextFrame) SetValues(values []string) {
	enc := DefaultEncoding
	switch s := f.fields.(type) {
	case *decoded:
		enc = s.encoding
	case *undecoded:
		if len(s.data) > 0 && textcodec.Encoding(s.data[0]).Valid() {
			enc = textcodec.Encoding(s.data[0])
		}
	}
	f.fields = &decoded{values: slices.Clone(values), encoding: enc}
}

// Encoding returns the text encoding the frame was read with or will be
// written with (subject to correction for the target version).
func (f *TextFrame) Encoding() (textcodec.Encoding, error) {
	d, err := f.decode()
	if err != nil {
		return 0, err
	}
	return d.encoding, nil
}

// SetEncoding changes the encoding used for future rendering.
func (f *TextFrame) SetEncoding(enc textcodec.Encoding) error {
	d, err := f.decode()
	if err != nil {
		return err
	}
	d.encoding = enc
	return nil
}

// Text returns the values joined by "; ".
func (f *TextFrame) Text() (string, error) {
	d, err := f.decode()
	if err != nil {
		return "", err
	}
	return strings.Join(d.values, "; "), nil
}

func (f *TextFrame) decode() (*decoded, error) {
	switch s := f.fields.(type) {
	case *decoded:
		return s, nil
	case *undecoded:
		d, err := parseFields(f.header.ID, s.data, s.version)
		if err != nil {
			return nil, err
		}
		f.fields = d
		return d, nil
	default:
		// zero TextFrame
		d := &decoded{encoding: DefaultEncoding}
		f.fields = d
		return d, nil
	}
}
