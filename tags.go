package id3text

import (
	"iter"
)

// DefaultEncoding is the encoding of frames created by SetText and
// SetUserText. It is corrected to UTF-16 when saving as ID3v2.3.
const DefaultEncoding = UTF8

// Text returns the values of the first id frame. A missing frame yields
// no values and no error.
func (f *File) Text(id string) ([]string, error) {
	t, err := Find(f.Tag, id, DefaultEncoding, false)
	if err != nil || t == nil {
		return nil, err
	}
	return t.Values()
}

// SetText replaces the values of the first id frame, creating it if needed.
// Calling it with no values removes every id frame.
func (f *File) SetText(id string, values ...string) error {
	if len(values) == 0 {
		if _, err := Find(f.Tag, id, DefaultEncoding, false); err != nil {
			return err
		}
		f.Tag.RemoveFrames(id)
		return nil
	}

	t, err := Find(f.Tag, id, DefaultEncoding, true)
	if err != nil {
		return err
	}
	t.SetValues(values)
	return nil
}

// UserText returns the values of the TXXX frame with the given description.
func (f *File) UserText(description string) ([]string, error) {
	u, err := FindUser(f.Tag, description, DefaultEncoding, false)
	if err != nil || u == nil {
		return nil, err
	}
	return u.Values()
}

// SetUserText replaces the values of the TXXX frame with the given
// description, creating it if needed. Calling it with no values removes
// the frame.
func (f *File) SetUserText(description string, values ...string) error {
	u, err := FindUser(f.Tag, description, DefaultEncoding, len(values) > 0)
	if err != nil || u == nil {
		return err
	}
	if len(values) == 0 {
		f.Tag.RemoveFrame(u)
		return nil
	}
	return u.SetValues(values)
}

// TextFrames returns an iterator over the tag's text frames, TXXX frames
// included, in tag order.
//
// Example:
//
//	for id, values := range file.TextFrames() {
//		fmt.Printf("%s: %v\n", id, values)
//	}
//
// Frames that fail to decode are skipped.
func (f *File) TextFrames() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for fr := range f.Tag.All() {
			var (
				values []string
				err    error
			)
			switch t := fr.(type) {
			case *TextFrame:
				values, err = t.Values()
			case *UserTextFrame:
				values, err = t.Fields()
			default:
				continue
			}
			if err != nil {
				continue
			}
			if !yield(fr.ID(), values) {
				return
			}
		}
	}
}
