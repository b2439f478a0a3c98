package app

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SelectionError is a token from the selection line that is not an integer.
type SelectionError struct {
	Token string
	Err   error
}

func (e SelectionError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Token, e.Err)
}

func (e SelectionError) Unwrap() error {
	return e.Err
}

// Selection is the parsed form of a comma-separated index line.
type Selection struct {
	// Numbers holds every token that parsed as an integer, in input order.
	// Range checking happens when the numbers are applied to a match list.
	Numbers []int
	Invalid []SelectionError
}

// ParseSelection splits input on commas and parses each trimmed token.
// A bad token is recorded and skipped; the rest of the line is still parsed.
// A blank line selects nothing.
func ParseSelection(input string) Selection {
	var sel Selection
	if strings.TrimSpace(input) == "" {
		return sel
	}
	for _, raw := range strings.Split(input, ",") {
		token := strings.TrimSpace(raw)
		n, err := strconv.Atoi(token)
		if err != nil {
			sel.Invalid = append(sel.Invalid, SelectionError{Token: token, Err: err})
			continue
		}
		sel.Numbers = append(sel.Numbers, n)
	}
	return sel
}

// Confirmed reports whether a yes/no answer is affirmative: its first
// non-blank character is 'y' or 'Y'.
func Confirmed(answer string) bool {
	trimmed := strings.TrimLeftFunc(answer, unicode.IsSpace)
	return strings.HasPrefix(trimmed, "y") || strings.HasPrefix(trimmed, "Y")
}
