package codec

import (
	"bytes"
	"fmt"
)

// Compress encodes an uncompressed record of at most MaxRecordSize bytes.
//
// The scan keeps a needle data[head:tail] and looks for its first
// occurrence in the window that ends at tail. While the needle keeps
// matching it grows by one byte; once it stops matching (or gets too long,
// or hits the end of the record) either the head byte is issued as a
// literal or the last matching needle is issued as a back-reference.
func (c *RecordCodec) Compress(data []byte) ([]byte, error) {
	if len(data) > MaxRecordSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrRecordTooLarge, len(data), MaxRecordSize)
	}

	w := &tokenWriter{out: make([]byte, 0, len(data)+len(data)/8+1)}
	end := len(data)
	head, tail, window := 0, 1, 0

	for head != end {
		if head-window > MaxDistance {
			window = head - MaxDistance
		}

		hit := bytes.Index(data[window:tail], data[head:tail])
		matched := hit >= 0 && window+hit != head

		if !matched || tail-head > MaxMatch || tail == end {
			if tail-head <= MinMatch {
				w.literal(data[head])
				head++
			} else {
				// data[head:tail-1] matched at window on the previous pass
				dist := head - window
				count := tail - head - 1 - MinMatch
				if dist > MaxDistance || count >= 1<<countBits {
					return nil, fmt.Errorf("%w: distance %d, length code %d", ErrInternal, dist, count)
				}
				w.backref(dist, count)
				head = tail - 1
			}
			window = 0
		} else {
			window += hit
		}

		// at the end of the buffer tail stays put so the residue drains
		// one byte at a time
		if tail != end {
			tail++
		}
	}
	w.flush()

	return mergeEscapes(w.out), nil
}

// tokenWriter emits literal and back-reference tokens, holding back a
// single space so it can be folded into the byte that follows it.
type tokenWriter struct {
	out   []byte
	space bool
}

func (w *tokenWriter) literal(b byte) {
	if w.space {
		w.space = false
		if b >= 0x40 && b <= 0x7F {
			w.out = append(w.out, b^0x80)
			return
		}
		w.out = append(w.out, ' ')
	} else if b == ' ' {
		w.space = true
		return
	}

	if needsEscape(b) {
		w.out = append(w.out, 1)
	}
	w.out = append(w.out, b)
}

func (w *tokenWriter) backref(dist, count int) {
	w.flush()
	code := dist<<countBits | count
	w.out = append(w.out, byte(0x80|code>>8), byte(code))
}

func (w *tokenWriter) flush() {
	if w.space {
		w.out = append(w.out, ' ')
		w.space = false
	}
}

func needsEscape(b byte) bool {
	return (b >= 1 && b <= 8) || b >= 0x80
}

// mergeEscapes folds runs of single-byte escapes (0x01 b) into one escape
// carrying up to eight literal bytes.
func mergeEscapes(tokens []byte) []byte {
	out := make([]byte, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		b := tokens[i]
		switch {
		case b >= 0x80 && b < 0xC0:
			out = append(out, b, tokens[i+1])
			i++
		case b == 1:
			at := len(out)
			out = append(out, 1, tokens[i+1])
			i++
			for i+1 < len(tokens) && tokens[i+1] == 1 && out[at] < 8 {
				out[at]++
				out = append(out, tokens[i+2])
				i += 2
			}
		default:
			out = append(out, b)
		}
	}
	return out
}
