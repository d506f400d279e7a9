package textframe

import (
	"bytes"
	"slices"
	"strings"

	"github.com/simonhull/id3text/internal/textcodec"
	"github.com/simonhull/id3text/internal/types"
)

// slashSeparated lists the legacy frames that join multiple values with '/'.
var slashSeparated = map[string]bool{
	"TCOM": true,
	"TEXT": true,
	"TOLY": true,
	"TOPE": true,
	"TPE1": true,
	"TPE2": true,
	"TPE3": true,
	"TPE4": true,
}

// parseFields decodes field bytes read under version v.
func parseFields(id string, data []byte, v types.Version) (*decoded, error) {
	if len(data) == 0 {
		return nil, &types.CorruptedFrameError{ID: id, Reason: "no field data"}
	}
	enc, err := textcodec.ParseEncoding(data[0])
	if err != nil {
		return nil, &types.CorruptedFrameError{ID: id, Reason: err.Error()}
	}
	rest := data[1:]

	var values []string
	switch {
	case !v.Legacy() || id == UserTextID:
		values = slices.Collect(textcodec.Split(rest, enc))
	case len(rest) == 0 || bytes.HasPrefix(rest, textcodec.Delimiter(enc)):
		// a leading terminator means an empty string
	default:
		values = splitLegacy(id, strings.TrimRight(textcodec.Decode(rest, enc), "\x00"))
	}

	return &decoded{values: trimTrailingEmpty(values), encoding: enc}, nil
}

// splitLegacy breaks an ID3v2.2/2.3 single string into values.
func splitLegacy(id, s string) []string {
	switch {
	case slashSeparated[id]:
		return strings.Split(s, "/")
	case id == GenreID:
		return splitGenres(s)
	default:
		return []string{s}
	}
}

// splitGenres peels leading "(N)" references off a legacy TCON string.
// Whatever follows the last reference is kept as free text.
func splitGenres(s string) []string {
	var values []string
	for strings.HasPrefix(s, "(") {
		end := strings.IndexByte(s, ')')
		if end < 0 {
			break
		}
		values = append(values, s[1:end])
		s = s[end+1:]
	}
	if s != "" {
		values = append(values, s)
	}
	return values
}

// Stray terminators at the end of the field show up as empty values.
func trimTrailingEmpty(values []string) []string {
	for len(values) > 0 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}
	return values
}
