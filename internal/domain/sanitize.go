package domain

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// SanitizeText reduces user input to a single line of plain text: markup is
// stripped, control characters dropped and whitespace collapsed.
func SanitizeText(raw string) string {
	s := html.UnescapeString(textPolicy.Sanitize(raw))
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
