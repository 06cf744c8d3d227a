package convert

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ssargent/palmdoc/pkg/charmap"
	"github.com/ssargent/palmdoc/pkg/codec"
	"github.com/ssargent/palmdoc/pkg/doc"
)

// EncodeOptions configures Encode.
type EncodeOptions struct {
	Name        string
	Compress    bool
	StripBinary bool
	Timestamps  bool
	Now         func() time.Time

	Warn     charmap.WarnFunc
	Listener Listener

	// Source and Dest name the streams in errors.
	Source string
	Dest   string
}

// Encode reads UTF-8 text from r and writes it to w as a Doc file.
func Encode(ctx context.Context, w io.WriteSeeker, r io.Reader, opts EncodeOptions) (*Stats, error) {
	stats := &Stats{}

	text, err := io.ReadAll(&source{r: r, path: opts.Source})
	if err != nil {
		return stats, err
	}
	stats.TextBytes = int64(len(text))

	enc := charmap.Encoder{Warn: countWarnings(stats, opts.Warn)}
	palm := enc.Encode(make([]byte, 0, len(text)), text)
	if opts.StripBinary {
		palm = StripBinary(palm)
	}

	mode := doc.PlainText
	if opts.Compress {
		mode = doc.Compressed
	}

	// the title is shown by the reader, so it is stored in the PalmOS set too
	name := (&charmap.Encoder{}).Encode(nil, []byte(opts.Name))

	dw, err := doc.NewWriter(&sink{w: w, path: opts.Dest}, doc.WriterOptions{
		Name:        string(name),
		Size:        len(palm),
		Compression: mode,
		Timestamps:  opts.Timestamps,
		Now:         opts.Now,
	})
	if err != nil {
		return stats, err
	}

	rc := codec.NewRecordCodec()
	total := dw.NumRecords()
	for n := 1; n <= total; n++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		start := (n - 1) * doc.RecordSize
		end := min(start+doc.RecordSize, len(palm))
		record := palm[start:end]

		payload := record
		if opts.Compress {
			if payload, err = rc.Compress(record); err != nil {
				return stats, fmt.Errorf("record %d: %w", n, err)
			}
		}

		if err := dw.WriteRecord(payload); err != nil {
			return stats, fmt.Errorf("record %d: %w", n, err)
		}

		event := RecordEvent{Direction: Encoding, Record: n, Total: total, In: len(record), Out: len(payload)}
		stats.add(event)
		if opts.Listener != nil {
			opts.Listener.RecordDone(event)
		}
	}

	return stats, dw.Close()
}

func countWarnings(stats *Stats, warn charmap.WarnFunc) charmap.WarnFunc {
	return func(w charmap.Warning) {
		stats.Warnings++
		if warn != nil {
			warn(w)
		}
	}
}
