// Package sanitize strips markup and script fragments from free text before
// it is echoed into an outbound notification.
package sanitize

import (
	"regexp"
	"strings"
)

const boundedMaxLen = 500

var (
	// tagRegex matches anything resembling an HTML/XML tag, including an
	// unterminated one at end of input.
	tagRegex = regexp.MustCompile(`</?[^>]+(>|$)`)

	jsProtocolRegex   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=`)
	whitespaceRegex   = regexp.MustCompile(`\s+`)
	urlRegex          = regexp.MustCompile(`(?i)https?://|www\.`)

	angleReplacer = strings.NewReplacer("<", "", ">", "")
)

// Text removes NUL bytes, HTML/XML tags, javascript: protocol markers and
// inline event-handler attributes, and collapses whitespace runs to a single
// space. It is idempotent: the script-fragment removals loop to a fixed point
// so stripping can never reassemble a removable substring.
func Text(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = tagRegex.ReplaceAllString(s, "")
	s = angleReplacer.Replace(s)
	for jsProtocolRegex.MatchString(s) {
		s = jsProtocolRegex.ReplaceAllString(s, "")
	}
	for eventHandlerRegex.MatchString(s) {
		s = eventHandlerRegex.ReplaceAllString(s, "")
	}
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return s
}

// Bounded sanitizes text from a less-trusted upstream: everything Text does,
// plus trimming and truncation to 500 characters to bound message size.
func Bounded(s string) string {
	s = strings.TrimSpace(Text(s))
	runes := []rune(s)
	if len(runes) > boundedMaxLen {
		s = string(runes[:boundedMaxLen])
	}
	return s
}

// LinkCount counts URL-like substrings (http://, https://, www.) in s.
func LinkCount(s string) int {
	return len(urlRegex.FindAllString(s, -1))
}
