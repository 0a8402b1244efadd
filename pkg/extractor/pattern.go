package extractor

import "regexp"

// urlPattern matches an http or https scheme (any letter case) followed by one
// or more characters up to the first whitespace, quote or angle bracket.
// Whitespace means ASCII \t\n\v\f\r and space, the \x1c-\x1f separators, NEL
// and every rune in Unicode category Z.
//
// Trailing punctuation such as '.', ')' or ',' is kept as part of the match.
var urlPattern = regexp.MustCompile(`(?i)https?://[^\t\n\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}'"<>]+`) //nolint: gochecknoglobals

// Pattern returns the expression used to recognise URLs.
func Pattern() string { return urlPattern.String() }

// Find returns all non-overlapping URL matches in text, left to right.
// Duplicates are preserved; callers merge them into a set.
func Find(text string) []string {
	return urlPattern.FindAllString(text, -1)
}
