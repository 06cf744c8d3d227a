package doc

import (
	"fmt"
	"io"
	"time"

	"github.com/ssargent/palmdoc/pkg/pdb"
)

// WriterOptions configures NewWriter.
type WriterOptions struct {
	// Name is the title shown by Doc readers, cut to 31 bytes.
	Name string
	// Size is the total uncompressed length of the text.
	Size        int
	Compression Compression
	// Timestamps stores creation and modification dates. Zero otherwise.
	Timestamps bool
	// Now overrides the clock used for timestamps.
	Now func() time.Time
}

// Writer writes the text records of a Doc file in order.
type Writer struct {
	db         *pdb.Writer
	numRecords int
}

// NewWriter writes the header, the directory and record 0 to ws.
func NewWriter(ws io.WriteSeeker, opts WriterOptions) (*Writer, error) {
	if !opts.Compression.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint16(opts.Compression))
	}

	n := NumRecords(opts.Size)
	if opts.Size < 0 || n > MaxTextRecords {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, opts.Size)
	}

	h := pdb.Header{
		Name:       opts.Name,
		Type:       pdb.NewTag(Type),
		Creator:    pdb.NewTag(Creator),
		NumRecords: uint16(n + 1),
	}
	if opts.Timestamps {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		h.Created = pdb.NewPalmTime(now())
		h.Modified = h.Created
	}

	db, err := pdb.NewWriter(ws, h)
	if err != nil {
		return nil, err
	}

	rec0 := Record0{
		Version:    opts.Compression,
		DocSize:    uint32(opts.Size),
		NumRecords: uint16(n),
		RecordSize: RecordSize,
	}
	data, err := rec0.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if err := db.WriteRecord(data); err != nil {
		return nil, err
	}

	return &Writer{db: db, numRecords: n}, nil
}

// NumRecords returns the number of text records the file declares.
func (w *Writer) NumRecords() int {
	return w.numRecords
}

// WriteRecord writes the next text record payload.
func (w *Writer) WriteRecord(payload []byte) error {
	return w.db.WriteRecord(payload)
}

// Close fails with pdb.ErrIncomplete if fewer records than declared were
// written.
func (w *Writer) Close() error {
	return w.db.Close()
}
