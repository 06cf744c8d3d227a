// Package charmap maps between the PalmOS character set and Unicode.
//
// PalmOS text is ISO 8859-1 compatible except for the 0x80..0x9F block,
// which carries Windows-1252 style punctuation plus the four card suits,
// and a handful of device specific slots below 0x20.
package charmap

// noMap marks table slots without a Unicode equivalent.
const noMap rune = -1

// palmToUnicode covers 0x00..0x1F and 0x80..0x9F. Every other byte maps to
// the code point with the same value.
var palmToUnicode = [256]rune{
	0x00: noMap,
	0x14: noMap, // OTA secure
	0x15: noMap, // OTA
	0x16: noMap, // command stroke
	0x17: noMap, // shortcut stroke
	0x18: 0x2026,
	0x19: 0x2007,

	0x80: 0x20AC,
	0x81: noMap,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8D: 0x2662,
	0x8E: 0x2663,
	0x8F: 0x2661,
	0x90: 0x2660,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: noMap,
	0x9C: 0x0153,
	0x9D: noMap, // command stroke
	0x9E: noMap, // shortcut stroke
	0x9F: 0x0178,
}

// unicodeToPalm is the reverse of the special slots above. U+2026 goes to
// 0x18, so 0x85 never comes back out of an encode.
var unicodeToPalm = map[rune]byte{
	0x2026: 0x18,
	0x2007: 0x19,

	0x20AC: 0x80,
	0x201A: 0x82,
	0x0192: 0x83,
	0x201E: 0x84,
	0x2020: 0x86,
	0x2021: 0x87,
	0x02C6: 0x88,
	0x2030: 0x89,
	0x0160: 0x8A,
	0x2039: 0x8B,
	0x0152: 0x8C,
	0x2662: 0x8D,
	0x2663: 0x8E,
	0x2661: 0x8F,
	0x2660: 0x90,
	0x2018: 0x91,
	0x2019: 0x92,
	0x201C: 0x93,
	0x201D: 0x94,
	0x2022: 0x95,
	0x2013: 0x96,
	0x2014: 0x97,
	0x02DC: 0x98,
	0x2122: 0x99,
	0x0161: 0x9A,
	0x0153: 0x9C,
	0x0178: 0x9F,
}

func init() {
	for b := range palmToUnicode {
		special := b < 0x20 || (b >= 0x80 && b < 0xA0)
		if !special {
			palmToUnicode[b] = rune(b)
			continue
		}
		if palmToUnicode[b] == 0 {
			palmToUnicode[b] = rune(b)
		}
	}
}

// ToUnicode returns the code point for a PalmOS byte. The second result is
// false for bytes with no Unicode equivalent, including the two reserved
// values.
func ToUnicode(b byte) (rune, bool) {
	r := palmToUnicode[b]
	if r == noMap {
		return 0, false
	}
	return r, true
}

// FromUnicode returns the PalmOS byte for a code point. ASCII maps to
// itself except U+0018 and U+0019, which are not encodable because PalmOS
// uses those bytes for U+2026 and U+2007.
func FromUnicode(r rune) (byte, bool) {
	if b, ok := unicodeToPalm[r]; ok {
		return b, true
	}
	if (r >= 0 && r < 0x80) || (r >= 0xA0 && r <= 0xFF) {
		if palmToUnicode[r] == r {
			return byte(r), true
		}
	}
	return 0, false
}

// IsReserved reports whether b is one of the two byte values PalmOS never
// assigns (0x81 and 0x9B).
func IsReserved(b byte) bool {
	return b == 0x81 || b == 0x9B
}
