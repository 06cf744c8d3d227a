package charmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidCodepoint is returned by ParseCodepoint.
var ErrInvalidCodepoint = errors.New("invalid Unicode code point")

// ParseCodepoint parses a code point given as a single character, a decimal
// or 0x-prefixed number, or U+XXXX notation.
func ParseCodepoint(s string) (rune, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r != utf8.RuneError {
			return r, nil
		}
	}

	num, base := s, 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"),
		strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		num, base = s[2:], 16
	}

	v, err := strconv.ParseUint(num, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodepoint, s)
	}

	r := rune(v)
	if r == 0 || !utf8.ValidRune(r) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodepoint, s)
	}
	return r, nil
}
