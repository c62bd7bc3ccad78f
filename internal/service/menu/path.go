package menu

import "strings"

// Separator delimits menu levels in the accumulated selection text.
const Separator = "*"

// Back is the reserved token that pops one level of navigation history.
// The same value is printed as a literal "0. Back" option in several menus;
// a flow that needed a trailing "0" as a real selection would be
// unreachable. That collision is part of the protocol and must stay.
const Back = "0"

// Tokenize splits the accumulated text into the ordered selection path.
// Trailing empty tokens are discarded, then a single trailing Back token is
// popped — exactly one, with no re-check, even if earlier tokens also equal
// the sentinel. Empty input yields an empty path.
func Tokenize(text string) []string {
	parts := strings.Split(text, Separator)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if n := len(parts); n > 0 && parts[n-1] == Back {
		parts = parts[:n-1]
	}
	return parts
}
