// Package doc implements the PalmDoc layer on top of a PDB container:
// the TEXt/REAd signature and record 0, which declares the compression
// mode and the uncompressed length of the text.
package doc

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ssargent/palmdoc/pkg/codec"
	"github.com/ssargent/palmdoc/pkg/pdb"
)

const (
	Type    = "TEXt"
	Creator = "REAd"

	// RecordSize is the nominal uncompressed size of a text record.
	RecordSize = codec.MaxRecordSize

	// Record0Size is the length of the metadata record.
	Record0Size = 16

	// MaxTextRecords is the most text records a directory can address.
	MaxTextRecords = 1<<16 - 2
)

// Errors
var (
	ErrNotDocFile         = errors.New("not a Doc file")
	ErrUnknownCompression = errors.New("unknown compression type")
	ErrTooLarge           = errors.New("text too large for a Doc file")
)

// Compression is the record encoding declared in record 0.
type Compression uint16

const (
	PlainText  Compression = 1
	Compressed Compression = 2
)

// Valid reports whether c is one of the two known modes.
func (c Compression) Valid() bool {
	return c == PlainText || c == Compressed
}

func (c Compression) String() string {
	switch c {
	case PlainText:
		return "plain"
	case Compressed:
		return "compressed"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(c))
	}
}

// Record0 is the document metadata record.
type Record0 struct {
	Version    Compression
	DocSize    uint32 // uncompressed text length
	NumRecords uint16 // text records, not counting record 0
	RecordSize uint16
}

// MarshalBinary encodes r into its 16-byte wire form.
func (r *Record0) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Record0Size)
	binary.BigEndian.PutUint16(buf[0:], uint16(r.Version))
	binary.BigEndian.PutUint32(buf[4:], r.DocSize)
	binary.BigEndian.PutUint16(buf[8:], r.NumRecords)
	binary.BigEndian.PutUint16(buf[10:], r.RecordSize)
	return buf, nil
}

// UnmarshalBinary decodes record 0. Extra trailing bytes are ignored.
func (r *Record0) UnmarshalBinary(data []byte) error {
	if len(data) < Record0Size {
		return fmt.Errorf("%w: record 0 is %d bytes, want %d", pdb.ErrCorrupt, len(data), Record0Size)
	}
	r.Version = Compression(binary.BigEndian.Uint16(data[0:]))
	r.DocSize = binary.BigEndian.Uint32(data[4:])
	r.NumRecords = binary.BigEndian.Uint16(data[8:])
	r.RecordSize = binary.BigEndian.Uint16(data[10:])
	return nil
}

// NumRecords returns how many text records hold size bytes.
func NumRecords(size int) int {
	return (size + RecordSize - 1) / RecordSize
}
