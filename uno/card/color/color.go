package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is one of the four playable colors, or Wild for colorless cards.
// Wild is the zero value and doubles as "no color chosen".
type Color int

const (
	Wild Color = iota
	Red
	Blue
	Green
	Yellow
)

// All lists the playable colors in tie-break precedence order.
var All = []Color{Red, Blue, Green, Yellow}

var names = map[Color]string{
	Wild:   "wild",
	Red:    "red",
	Blue:   "blue",
	Green:  "green",
	Yellow: "yellow",
}

var painters = map[Color]func(string, ...interface{}) string{
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// Real reports whether c is one of the four playable colors.
func (c Color) Real() bool {
	return c >= Red && c <= Yellow
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName parses a playable color name. Single-letter abbreviations are accepted.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range All {
		if name == c.Name() || (len(name) == 1 && name[0] == c.Name()[0]) {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
