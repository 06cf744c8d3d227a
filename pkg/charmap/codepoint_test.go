package charmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodepoint(t *testing.T) {
	testCases := []struct {
		in   string
		want rune
	}{
		{in: "?", want: '?'},
		{in: "7", want: '7'},
		{in: "é", want: 0xE9},
		{in: "63", want: 63},
		{in: "0x2026", want: 0x2026},
		{in: "0XFFFD", want: 0xFFFD},
		{in: "0010", want: 10},
		{in: "U+FFFD", want: 0xFFFD},
		{in: "u+00a0", want: 0xA0},
		{in: "U+10FFFF", want: 0x10FFFF},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCodepoint(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCodepoint_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "00", "U+", "0xD800", "U+DFFF", "0x110000", "U+0x41",
		"0b1000001", "0o101", "1_000", "0x_41", "+65", "0x"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCodepoint(in)
			assert.ErrorIs(t, err, ErrInvalidCodepoint)
		})
	}
}
