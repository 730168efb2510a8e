package stt

import (
	"regexp"
	"strings"
)

// annotation matches recognizer environmental annotations like
// "(keyboard clicking)", "[laughter]", "[BLANK_AUDIO]".
var annotation = regexp.MustCompile(`[\(\[][a-zA-Z_][a-zA-Z_\s]*[\)\]]`)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize cleans a raw transcript before it enters the session:
// newlines collapse to spaces, recognizer annotations are stripped,
// leftover whitespace is squeezed.
func Normalize(s string) string {
	s = annotation.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
