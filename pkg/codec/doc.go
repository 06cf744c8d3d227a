// Package codec implements the PalmDoc record compression scheme.
//
// PalmDoc text records are at most 4096 bytes uncompressed. When a Doc file
// declares compression mode 2, every data record is stored using a small
// byte-oriented LZ77 variant. The format is fixed by the PalmOS Doc readers;
// nothing about it is tunable.
//
// # Token Format
//
// A compressed record is a sequence of tokens. The first byte of a token
// selects its kind:
//
//	0x00          literal NUL
//	0x01..0x08    the next N bytes are copied verbatim
//	0x09..0x7F    the byte itself
//	0x80..0xBF    back-reference, two bytes: 10dddddd dddddlll
//	0xC0..0xFF    a space followed by (byte ^ 0x80)
//
// For a back-reference the 11-bit d field is the distance back into the
// already decoded output and the 3-bit l field is the copy length minus 3,
// so a single reference copies 3 to 10 bytes from at most 2047 bytes back.
// The source and destination ranges may overlap; bytes are copied one at a
// time in increasing order, so a distance of 1 repeats the previous byte.
//
// # Compression
//
// The compressor reproduces the behavior of the reference Doc converter
// byte for byte:
//
//   - the match search is a plain first-hit scan of the window, not a
//     longest-match search
//   - a space is held back and folded into the next byte when that byte is
//     in 0x40..0x7F
//   - bytes 0x01..0x08 and 0x80..0xFF are escaped, and runs of up to eight
//     escaped bytes are merged into a single escape in a second pass
//
// # Usage
//
//	c := codec.NewRecordCodec()
//
//	packed, err := c.Compress(record)
//	if err != nil {
//	    return err
//	}
//
//	plain, err := c.Decompress(packed)
//	if err != nil {
//	    return err // ErrMalformed, ErrRecordOverflow
//	}
//
// # Thread Safety
//
// RecordCodec holds only configuration and is safe for concurrent use.
// Every call allocates its own output buffer.
package codec
