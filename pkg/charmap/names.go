package charmap

import "fmt"

// byteNames holds the names of the bytes that do not print as themselves.
var byteNames = map[byte]string{
	0x00: "null",
	0x01: "start of heading",
	0x02: "start of text",
	0x03: "end of text",
	0x04: "end of transmission",
	0x05: "enquiry",
	0x06: "acknowledge",
	0x07: "bell",
	0x08: "backspace",
	0x09: "horizontal tab",
	0x0A: "line feed",
	0x0B: "vertical tab",
	0x0C: "form feed",
	0x0D: "carriage return",
	0x0E: "shift out",
	0x0F: "shift in",
	0x10: "data link escape",
	0x11: "device control one",
	0x12: "device control two",
	0x13: "device control three",
	0x14: "OTA secure",
	0x15: "OTA",
	0x16: "command stroke",
	0x17: "shortcut stroke",
	0x18: "horizontal ellipsis",
	0x19: "figure space",
	0x1A: "substitute",
	0x1B: "escape",
	0x1C: "information separator four",
	0x1D: "information separator three",
	0x1E: "information separator two",
	0x1F: "information separator one",
	0x7F: "delete",
	0x80: "euro sign",
	0x81: "not used",
	0x82: "single low-9 quotation mark",
	0x83: "latin small letter f with hook",
	0x84: "double low-9 quotation mark",
	0x85: "horizontal ellipsis",
	0x86: "dagger",
	0x87: "double dagger",
	0x88: "modifier letter circumflex accent",
	0x89: "per mille sign",
	0x8A: "latin capital letter S with caron",
	0x8B: "single left-pointing angle quotation mark",
	0x8C: "latin capital ligature OE",
	0x8D: "white diamond suit",
	0x8E: "black club suit",
	0x8F: "white heart suit",
	0x90: "black spade suit",
	0x91: "left single quotation mark",
	0x92: "right single quotation mark",
	0x93: "left double quotation mark",
	0x94: "right double quotation mark",
	0x95: "bullet",
	0x96: "en dash",
	0x97: "em dash",
	0x98: "small tilde",
	0x99: "trade mark sign",
	0x9A: "latin small letter s with caron",
	0x9B: "not used",
	0x9C: "latin small ligature oe",
	0x9D: "command stroke",
	0x9E: "shortcut stroke",
	0x9F: "latin capital letter Y with diaeresis",
	0xA0: "no-break space",
	0xA1: "inverted exclamation mark",
	0xA2: "cent sign",
	0xA3: "pound sign",
	0xA4: "currency sign",
	0xA5: "yen sign",
	0xA6: "broken bar",
	0xA7: "section sign",
	0xA8: "diaeresis",
	0xA9: "copyright sign",
	0xAA: "feminine ordinal indicator",
	0xAB: "left-pointing double angle quotation mark",
	0xAC: "not sign",
	0xAD: "soft hyphen",
	0xAE: "registered sign",
	0xAF: "macron",
	0xB0: "degree sign",
	0xB1: "plus-minus sign",
	0xB2: "superscript two",
	0xB3: "superscript three",
	0xB4: "acute accent",
	0xB5: "micro sign",
	0xB6: "pilcrow sign",
	0xB7: "middle dot",
	0xB8: "cedilla",
	0xB9: "superscript one",
	0xBA: "masculine ordinal indicator",
	0xBB: "right-pointing double angle quotation mark",
	0xBC: "vulgar fraction one quarter",
	0xBD: "vulgar fraction one half",
	0xBE: "vulgar fraction three quarters",
	0xBF: "inverted question mark",
	0xC0: "latin capital letter A with grave",
	0xC1: "latin capital letter A with acute",
	0xC2: "latin capital letter A with circumflex",
	0xC3: "latin capital letter A with tilde",
	0xC4: "latin capital letter A with diaeresis",
	0xC5: "latin capital letter A with ring above",
	0xC6: "latin capital letter AE",
	0xC7: "latin capital letter C with cedilla",
	0xC8: "latin capital letter E with grave",
	0xC9: "latin capital letter E with acute",
	0xCA: "latin capital letter E with circumflex",
	0xCB: "latin capital letter E with diaeresis",
	0xCC: "latin capital letter I with grave",
	0xCD: "latin capital letter I with acute",
	0xCE: "latin capital letter I with circumflex",
	0xCF: "latin capital letter I with diaeresis",
	0xD0: "latin capital letter eth",
	0xD1: "latin capital letter N with tilde",
	0xD2: "latin capital letter O with grave",
	0xD3: "latin capital letter O with acute",
	0xD4: "latin capital letter O with circumflex",
	0xD5: "latin capital letter O with tilde",
	0xD6: "latin capital letter O with diaeresis",
	0xD7: "multiplication sign",
	0xD8: "latin capital letter O with stroke",
	0xD9: "latin capital letter U with grave",
	0xDA: "latin capital letter U with acute",
	0xDB: "latin capital letter U with circumflex",
	0xDC: "latin capital letter U with diaeresis",
	0xDD: "latin capital letter Y with acute",
	0xDE: "latin capital letter thorn",
	0xDF: "latin small letter sharp s",
	0xE0: "latin small letter a with grave",
	0xE1: "latin small letter a with acute",
	0xE2: "latin small letter a with circumflex",
	0xE3: "latin small letter a with tilde",
	0xE4: "latin small letter a with diaeresis",
	0xE5: "latin small letter a with ring above",
	0xE6: "latin small letter ae",
	0xE7: "latin small letter c with cedilla",
	0xE8: "latin small letter e with grave",
	0xE9: "latin small letter e with acute",
	0xEA: "latin small letter e with circumflex",
	0xEB: "latin small letter e with diaeresis",
	0xEC: "latin small letter i with grave",
	0xED: "latin small letter i with acute",
	0xEE: "latin small letter i with circumflex",
	0xEF: "latin small letter i with diaeresis",
	0xF0: "latin small letter eth",
	0xF1: "latin small letter n with tilde",
	0xF2: "latin small letter o with grave",
	0xF3: "latin small letter o with acute",
	0xF4: "latin small letter o with circumflex",
	0xF5: "latin small letter o with tilde",
	0xF6: "latin small letter o with diaeresis",
	0xF7: "division sign",
	0xF8: "latin small letter o with stroke",
	0xF9: "latin small letter u with grave",
	0xFA: "latin small letter u with acute",
	0xFB: "latin small letter u with circumflex",
	0xFC: "latin small letter u with diaeresis",
	0xFD: "latin small letter y with acute",
	0xFE: "latin small letter thorn",
	0xFF: "latin small letter y with diaeresis",
}

// Name returns a human readable name for a PalmOS byte, for diagnostics.
func Name(b byte) string {
	if n, ok := byteNames[b]; ok {
		return n
	}
	return string(rune(b))
}

// Printable renders b for a diagnostic message: printable ASCII as itself,
// everything else as a hex escape.
func Printable(b byte) string {
	if b >= 0x20 && b < 0x7F {
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02X", b)
}
