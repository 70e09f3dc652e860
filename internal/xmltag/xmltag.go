// Package xmltag pulls the body of a single answer tag out of model output.
//
// It is a line scanner, not a parser: the input is split on '>' and the first
// fragment holding the closing marker wins. Opening tags, nesting, attributes
// and escaping are ignored.
package xmltag

import "strings"

// Extract returns the text that precedes the first "</tag" marker, with the
// marker removed. ok is false when no fragment contains the marker.
func Extract(s, tag string) (value string, ok bool) {
	closing := "</" + tag
	for _, fragment := range strings.Split(s, ">") {
		if strings.Contains(fragment, closing) {
			return strings.ReplaceAll(fragment, closing, ""), true
		}
	}
	return "", false
}

// ExtractOr returns the extracted value, or s unchanged when the tag is absent.
func ExtractOr(s, tag string) string {
	if v, ok := Extract(s, tag); ok {
		return v
	}
	return s
}
