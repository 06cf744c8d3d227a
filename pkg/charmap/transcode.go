package charmap

import (
	"fmt"
	"unicode/utf8"
)

// WarningKind classifies a character that could not be carried across.
type WarningKind string

const (
	// Decoding
	UnmappedByte WarningKind = "unmapped_byte"
	ReservedByte WarningKind = "reserved_byte"
	ControlByte  WarningKind = "control_byte"

	// Encoding
	UnmappedRune WarningKind = "unmapped_rune"
	InvalidUTF8  WarningKind = "invalid_utf8"
)

// Warning describes one character that was skipped or substituted.
type Warning struct {
	Kind WarningKind
	// Byte is the PalmOS byte (decoding) or the offending input byte
	// (invalid UTF-8).
	Byte byte
	// Rune is the code point that failed to map (encoding) or the
	// substitute that replaced Byte (decoding with a fallback).
	Rune rune
	// Offset is the position of the character in the input slice.
	Offset int
}

func (w Warning) String() string {
	switch w.Kind {
	case UnmappedByte:
		if w.Rune != 0 {
			return fmt.Sprintf("%q (%s): PalmOS character does not map to Unicode: replaced by U+%04X",
				Printable(w.Byte), Name(w.Byte), w.Rune)
		}
		return fmt.Sprintf("%q (%s): PalmOS character does not map to Unicode: skipped", Printable(w.Byte), Name(w.Byte))
	case ReservedByte:
		return fmt.Sprintf("%q: character unused by PalmOS: skipped", Printable(w.Byte))
	case ControlByte:
		return fmt.Sprintf("%q (%s): non-printable character found: skipped", Printable(w.Byte), Name(w.Byte))
	case UnmappedRune:
		return fmt.Sprintf("U+%04X: Unicode character does not map to PalmOS: skipped", w.Rune)
	case InvalidUTF8:
		return fmt.Sprintf("0x%02X at offset %d: invalid UTF-8 byte: skipped", w.Byte, w.Offset)
	default:
		return string(w.Kind)
	}
}

// WarnFunc receives mapping warnings. A nil WarnFunc discards them.
type WarnFunc func(Warning)

// Decoder turns PalmOS text into UTF-8.
type Decoder struct {
	// Fallback replaces bytes without a Unicode mapping. Zero skips them.
	Fallback rune
	Warn     WarnFunc
}

// Decode appends the UTF-8 form of src to dst and returns the result.
func (d *Decoder) Decode(dst, src []byte) []byte {
	for i, b := range src {
		if IsReserved(b) {
			d.warn(Warning{Kind: ReservedByte, Byte: b, Offset: i})
			continue
		}

		r, ok := ToUnicode(b)
		if !ok {
			d.warn(Warning{Kind: UnmappedByte, Byte: b, Rune: d.Fallback, Offset: i})
			if d.Fallback == 0 {
				continue
			}
			r = d.Fallback
		}

		if r < utf8.RuneSelf && !isTextASCII(r) {
			d.warn(Warning{Kind: ControlByte, Byte: b, Offset: i})
			continue
		}

		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

func (d *Decoder) warn(w Warning) {
	if d.Warn != nil {
		d.Warn(w)
	}
}

// isTextASCII reports whether r is printable ASCII or ASCII white space.
func isTextASCII(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return r >= 0x20 && r < 0x7F
}

// Encoder turns UTF-8 text into PalmOS text.
type Encoder struct {
	Warn WarnFunc
}

// Encode appends the PalmOS form of src to dst and returns the result.
func (e *Encoder) Encode(dst, src []byte) []byte {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			e.warn(Warning{Kind: InvalidUTF8, Byte: src[i], Offset: i})
			i++
			continue
		}

		if b, ok := FromUnicode(r); ok {
			dst = append(dst, b)
		} else {
			e.warn(Warning{Kind: UnmappedRune, Rune: r, Offset: i})
		}
		i += size
	}
	return dst
}

func (e *Encoder) warn(w Warning) {
	if e.Warn != nil {
		e.Warn(w)
	}
}
