package theme

import (
	"regexp"

	"github.com/thoreinstein/atheme/internal/errors"
)

// activeThemePattern matches the line selecting the active scheme. Anchors
// apply per line; the theme name is captured.
const activeThemePattern = `(?m)^colors: \*(\w*)[ \t]*`

// ActiveLine finds and rewrites the "colors: *<name>" line in raw config text.
// It works on text rather than the parsed document because the alias line is
// indistinguishable from the scheme it points at once YAML resolves it.
type ActiveLine struct {
	re *regexp.Regexp
}

// NewActiveLine compiles the active-theme pattern.
func NewActiveLine() *ActiveLine {
	return &ActiveLine{re: regexp.MustCompile(activeThemePattern)}
}

// Find returns the theme name of every matching line, in order.
func (a *ActiveLine) Find(text string) []string {
	matches := a.re.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Replace returns text with the active line pointing at name. Exactly one
// matching line must exist. Only the name is spliced, so trailing blanks and
// comments on the line are kept along with every other byte.
func (a *ActiveLine) Replace(text, name string) (string, error) {
	locs := a.re.FindAllStringSubmatchIndex(text, 2)
	switch len(locs) {
	case 0:
		return "", ErrActiveThemeMissing
	case 1:
	default:
		return "", errors.Wrapf(ErrActiveThemeAmbiguous, "found %d", len(a.re.FindAllStringIndex(text, -1)))
	}

	// locs[0][2:4] bounds the captured name
	start, end := locs[0][2], locs[0][3]
	return text[:start] + name + text[end:], nil
}

// Line returns the active-theme line for name, without a line terminator.
func Line(name string) string {
	return "colors: *" + name
}
