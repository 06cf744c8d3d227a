package codec

import (
	"fmt"
)

// Decompress decodes a compressed record back into its original bytes.
// Input that references data before the start of the record, or that ends
// in the middle of a token, fails with ErrMalformed.
func (c *RecordCodec) Decompress(data []byte) ([]byte, error) {
	out := make([]byte, 0, c.maxRecordSize)

	for i := 0; i < len(data); {
		b := data[i]
		i++

		switch {
		case b >= 1 && b <= 8:
			n := int(b)
			if i+n > len(data) {
				return nil, fmt.Errorf("%w: %d literal bytes at offset %d run past end of record", ErrMalformed, n, i-1)
			}
			out = append(out, data[i:i+n]...)
			i += n

		case b < 0x80: // 0x00 and 0x09..0x7F
			out = append(out, b)

		case b >= 0xC0:
			out = append(out, ' ', b^0x80)

		default:
			if i >= len(data) {
				return nil, fmt.Errorf("%w: back-reference at offset %d is truncated", ErrMalformed, i-1)
			}
			v := int(b)<<8 | int(data[i])
			i++

			dist := (v & 0x3FFF) >> countBits
			n := v&(1<<countBits-1) + MinMatch
			if dist == 0 || dist > len(out) {
				return nil, fmt.Errorf("%w: back-reference distance %d at output offset %d", ErrMalformed, dist, len(out))
			}

			// byte at a time: the source may overlap what this loop writes
			from := len(out) - dist
			for k := 0; k < n; k++ {
				out = append(out, out[from+k])
			}
		}

		if len(out) > c.maxRecordSize {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrRecordOverflow, c.maxRecordSize)
		}
	}

	return out, nil
}
