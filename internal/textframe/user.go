package textframe

import (
	"slices"

	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/textcodec"
	"github.com/simonhull/id3text/internal/types"
)

// UserTextFrame is a TXXX frame: a description followed by values.
// It stores everything in an underlying TextFrame whose first value is the
// description.
type UserTextFrame struct {
	text *TextFrame
}

// NewUser returns a TXXX frame with the given description and no values.
func NewUser(description string, enc textcodec.Encoding) *UserTextFrame {
	t := New(UserTextID, enc)
	t.fields.(*decoded).values = []string{description}
	return &UserTextFrame{text: t}
}

// ParseUser wraps raw TXXX field bytes read under version v.
func ParseUser(h frame.Header, data []byte, v types.Version) *UserTextFrame {
	return &UserTextFrame{text: Parse(h, data, v)}
}

// ID returns "TXXX".
func (u *UserTextFrame) ID() string {
	return u.text.ID()
}

// TextFrame returns the underlying frame, whose values include the
// description.
func (u *UserTextFrame) TextFrame() *TextFrame {
	return u.text
}

// Decode forces the lazy decode.
func (u *UserTextFrame) Decode() error {
	return u.text.Decode()
}

// Validate reports whether the frame would decode, leaving it untouched.
func (u *UserTextFrame) Validate() error {
	return u.text.Validate()
}

// Description returns the first field, or "" when the frame is empty.
func (u *UserTextFrame) Description() (string, error) {
	d, err := u.text.decode()
	if err != nil {
		return "", err
	}
	if len(d.values) == 0 {
		return "", nil
	}
	return d.values[0], nil
}

// SetDescription replaces the first field, keeping the values.
func (u *UserTextFrame) SetDescription(description string) error {
	d, err := u.text.decode()
	if err != nil {
		return err
	}
	if len(d.values) == 0 {
		d.values = []string{description}
		return nil
	}
	d.values[0] = description
	return nil
}

// Values returns every field after the description.
func (u *UserTextFrame) Values() ([]string, error) {
	d, err := u.text.decode()
	if err != nil {
		return nil, err
	}
	if len(d.values) < 2 {
		return []string{}, nil
	}
	return slices.Clone(d.values[1:]), nil
}

// SetValues replaces the values, keeping the description.
func (u *UserTextFrame) SetValues(values []string) error {
	description, err := u.Description()
	if err != nil {
		return err
	}
	u.text.SetValues(append([]string{description}, values...))
	return nil
}

// Fields returns the description and values together.
func (u *UserTextFrame) Fields() ([]string, error) {
	return u.text.Values()
}

// Encoding returns the frame's text encoding.
func (u *UserTextFrame) Encoding() (textcodec.Encoding, error) {
	return u.text.Encoding()
}

// SetEncoding changes the encoding used for future rendering.
func (u *UserTextFrame) SetEncoding(enc textcodec.Encoding) error {
	return u.text.SetEncoding(enc)
}

// RenderFields returns the field bytes for version v.
func (u *UserTextFrame) RenderFields(v types.Version) ([]byte, error) {
	return u.text.RenderFields(v)
}

// Render returns the complete frame for version v.
func (u *UserTextFrame) Render(v types.Version) ([]byte, error) {
	return u.text.Render(v)
}
