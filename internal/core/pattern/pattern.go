// Package pattern decides whether a message body counts as a properly
// formatted check-in.
package pattern

import "unicode"

// required is the letter sequence a proper check-in must contain, in order,
// case-insensitively, with arbitrary gaps between the letters.
var required = []rune("pantsoff")

// Matches reports whether text contains the required letters as a
// non-contiguous subsequence. A plain rune scan rather than a regex, so
// gaps may span newlines in multi-line messages.
func Matches(text string) bool {
	next := 0
	for _, r := range text {
		if unicode.ToLower(r) == required[next] {
			next++
			if next == len(required) {
				return true
			}
		}
	}
	return false
}
