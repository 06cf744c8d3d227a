package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/ssargent/palmdoc/pkg/charmap"
	"github.com/ssargent/palmdoc/pkg/codec"
	"github.com/ssargent/palmdoc/pkg/doc"
)

// DecodeOptions configures Decode.
type DecodeOptions struct {
	SkipSignatureCheck bool
	// Fallback replaces PalmOS characters with no Unicode mapping.
	Fallback rune

	Warn     charmap.WarnFunc
	Listener Listener

	Source string
	Dest   string
}

// Decode reads the Doc file in rs and writes its text to w as UTF-8. A
// record that fails to decompress stops the run before any of its text is
// written.
func Decode(ctx context.Context, w io.Writer, rs io.ReadSeeker, opts DecodeOptions) (*Stats, error) {
	stats := &Stats{}

	dr, err := doc.NewReader(&source{r: rs, path: opts.Source}, doc.ReaderOptions{
		SkipSignatureCheck: opts.SkipSignatureCheck,
	})
	if err != nil {
		return stats, err
	}

	out := &sink{w: w, path: opts.Dest}
	dec := charmap.Decoder{Fallback: opts.Fallback, Warn: countWarnings(stats, opts.Warn)}
	rc := codec.NewRecordCodec()
	total := dr.NumRecords()

	for n := 1; n <= total; n++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		raw, err := dr.Record(n)
		if err != nil {
			return stats, fmt.Errorf("record %d: %w", n, err)
		}

		record := raw
		if dr.Compression() == doc.Compressed {
			if record, err = rc.Decompress(raw); err != nil {
				return stats, fmt.Errorf("record %d: %w", n, err)
			}
		}

		text := dec.Decode(make([]byte, 0, len(record)), record)
		if _, err := out.Write(text); err != nil {
			return stats, err
		}
		stats.TextBytes += int64(len(text))

		event := RecordEvent{Direction: Decoding, Record: n, Total: total, In: len(raw), Out: len(record)}
		stats.add(event)
		if opts.Listener != nil {
			opts.Listener.RecordDone(event)
		}
	}

	return stats, nil
}
