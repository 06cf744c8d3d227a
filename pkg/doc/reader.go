package doc

import (
	"fmt"
	"io"

	"github.com/ssargent/palmdoc/pkg/pdb"
)

// ReaderOptions configures NewReader.
type ReaderOptions struct {
	// SkipSignatureCheck accepts files whose type and creator are not
	// TEXt and REAd.
	SkipSignatureCheck bool
}

// Reader reads the text records of a Doc file.
type Reader struct {
	db   *pdb.Reader
	rec0 Record0
}

// NewReader validates the container in rs and reads record 0. The type and
// creator are checked straight after the header, so a file that is not a
// Doc file fails with ErrNotDocFile however its directory looks. Unknown
// compression modes are rejected before any text record is read.
func NewReader(rs io.ReadSeeker, opts ReaderOptions) (*Reader, error) {
	h, err := pdb.ReadHeader(rs)
	if err != nil {
		return nil, err
	}
	if !opts.SkipSignatureCheck && (h.Type != pdb.NewTag(Type) || h.Creator != pdb.NewTag(Creator)) {
		return nil, fmt.Errorf("%w: type %q, creator %q", ErrNotDocFile, h.Type, h.Creator)
	}

	db, err := pdb.NewReader(rs)
	if err != nil {
		return nil, err
	}

	if db.NumEntries() == 0 {
		return nil, fmt.Errorf("%w: no record 0", pdb.ErrCorrupt)
	}

	raw, err := db.Record(0)
	if err != nil {
		return nil, err
	}

	r := &Reader{db: db}
	if err := r.rec0.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	if !r.rec0.Version.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint16(r.rec0.Version))
	}

	return r, nil
}

// Header returns the container header.
func (r *Reader) Header() pdb.Header {
	return r.db.Header()
}

// Record0 returns the document metadata.
func (r *Reader) Record0() Record0 {
	return r.rec0
}

// Compression returns the mode every text record is stored in.
func (r *Reader) Compression() Compression {
	return r.rec0.Version
}

// NumRecords returns the number of text records, taken from the directory.
func (r *Reader) NumRecords() int {
	return r.db.NumEntries() - 1
}

// Record returns the stored payload of text record n, 1 <= n <= NumRecords.
func (r *Reader) Record(n int) ([]byte, error) {
	if n < 1 || n > r.NumRecords() {
		return nil, fmt.Errorf("%w: text record %d of %d", pdb.ErrRecordRange, n, r.NumRecords())
	}
	return r.db.Record(n)
}
