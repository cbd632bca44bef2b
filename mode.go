package letterbox

import (
	"fmt"
	"strings"
)

// Mode selects how a viewport is fitted into its window.
type Mode byte

const (
	// Keep fits the ratio inside the window, pillarboxing or letterboxing
	// as needed.
	Keep Mode = iota
	// KeepWidth uses the full window width and derives the height, which
	// may exceed the window.
	KeepWidth
	// KeepHeight uses the full window height and derives the width, which
	// may exceed the window.
	KeepHeight
	// Scale ignores the ratio and fills the window.
	Scale
)

var modeNames = map[Mode]string{
	Keep:       "keep",
	KeepWidth:  "keep_width",
	KeepHeight: "keep_height",
	Scale:      "scale",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("mode(%d)", byte(m))
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode parses a mode name as returned by Mode.String. Matching is case
// insensitive and '-' may be used instead of '_'.
func ParseMode(s string) (Mode, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for m, name := range modeNames {
		if name == n {
			return m, nil
		}
	}

	return Keep, fmt.Errorf("%w: '%s'", ErrUnknownMode, s)
}
