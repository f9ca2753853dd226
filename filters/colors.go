package filters

import (
	"regexp"
	"strings"

	"mediafx/models"
)

// DefaultColor is the waveform color used until the caller sets others.
const DefaultColor = "#000000"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ColorList holds an ordered, never-empty list of hex colors for waveform
// rendering. The serialized form feeds the filter_complex expression
// directly, so every entry is validated at set-time.
type ColorList struct {
	colors []string
}

// NewColorList creates a list holding the default color.
func NewColorList() *ColorList {
	return &ColorList{colors: []string{DefaultColor}}
}

// Set replaces the list with candidates after validating every entry
// against `#` + 6 hex digits. Validation is atomic: the first invalid
// entry fails the whole call and the previous list is kept. An empty
// candidates slice is a no-op, which keeps the list non-empty.
func (cl *ColorList) Set(candidates []string) error {
	if len(candidates) == 0 {
		return nil
	}
	for _, c := range candidates {
		if !hexColorPattern.MatchString(c) {
			return models.NewInvalidConfiguration("colors", c,
				"must be '#' followed by exactly 6 hex digits")
		}
	}
	cl.colors = append([]string(nil), candidates...)
	return nil
}

// Colors returns a copy of the current list. It is never empty.
func (cl *ColorList) Colors() []string {
	return append([]string(nil), cl.colors...)
}

// String returns the pipe-joined form used inside filter expressions,
// e.g. "#FF0000|#00FF00".
func (cl *ColorList) String() string {
	return strings.Join(cl.colors, "|")
}
