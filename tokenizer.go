package cashbuddy

import (
	"slices"
	"strings"
)

// Recognized argument prefixes.
const (
	PrefixID          = "id/"
	PrefixAmount      = "a/"
	PrefixDescription = "desc/"
	PrefixCategory    = "cat/"
)

// AllPrefixes is the universe of prefixes a command may recognize.
var AllPrefixes = []string{PrefixID, PrefixAmount, PrefixDescription, PrefixCategory}

// Args holds the prefixed values sliced out of a raw argument string.
//
// Args does not validate semantics; see the Parse* functions for that.
type Args struct {
	command string
	values  map[string]string
}

// Tokenize extracts prefixed values from the argument part of a command line.
//
// For example "a/50 desc/Lunch cat/Food" yields a/ → "50", desc/ → "Lunch"
// and cat/ → "Food".
//
// Only the given prefixes are recognized; with none (or only blank ones) every
// prefix in AllPrefixes is. A prefix only starts a value at the beginning of
// the input or right after a whitespace. A prefix equal to the active one, or
// one that was already captured, is kept as literal text inside the current
// value, so a description like "Paid a/12345 for taxi" is not split.
func Tokenize(input string, prefixes ...string) Args {
	return tokenize("", input, prefixes)
}

func tokenize(command, input string, prefixes []string) Args {
	input = strings.TrimSpace(input)
	prefixes = normalizePrefixes(prefixes)
	values := make(map[string]string)

	active := ""
	start := -1
	for pos := 0; pos < len(input); pos++ {
		if pos > 0 && !isSpace(input[pos-1]) {
			continue
		}
		next := prefixAt(input, pos, prefixes)
		if next == "" {
			continue
		}
		if active == "" {
			active, start = next, pos+len(next)
			pos = start - 1
			continue
		}
		if _, captured := values[next]; next == active || captured {
			// literal text in the current value.
			continue
		}
		values[active] = strings.TrimSpace(input[start:pos])
		active, start = next, pos+len(next)
		pos = start - 1
	}
	if _, captured := values[active]; active != "" && !captured {
		values[active] = strings.TrimSpace(input[start:])
	}
	return Args{command: command, values: values}
}

// Value returns the value of a required prefix.
func (a Args) Value(prefix string) (string, error) {
	v, ok := a.values[prefix]
	if !ok {
		return "", &Error{Kind: ErrMissingPrefix, Command: a.command, Prefix: prefix}
	}
	return v, nil
}

// Optional returns the value of an optional prefix, and whether it was present.
func (a Args) Optional(prefix string) (string, bool) {
	v, ok := a.values[prefix]
	return v, ok
}

// Has reports whether the prefix was present.
func (a Args) Has(prefix string) bool {
	_, ok := a.values[prefix]
	return ok
}

// Len returns the number of captured prefixes.
func (a Args) Len() int { return len(a.values) }

func normalizePrefixes(prefixes []string) []string {
	var filtered []string
	for _, p := range prefixes {
		if strings.TrimSpace(p) == "" || slices.Contains(filtered, p) {
			continue
		}
		filtered = append(filtered, p)
	}
	if len(filtered) == 0 {
		return AllPrefixes
	}
	return filtered
}

// prefixAt returns the longest prefix starting at pos, or "".
func prefixAt(s string, pos int, prefixes []string) string {
	found := ""
	for _, p := range prefixes {
		if len(p) > len(found) && strings.HasPrefix(s[pos:], p) {
			found = p
		}
	}
	return found
}

// isSpace matches the ASCII whitespace class.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
