// Package pdb reads and writes Palm database (PDB) containers: a 78-byte
// header, a directory of 8-byte record entries, and the record payloads.
// All integers are big-endian.
package pdb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	HeaderSize = 78
	EntrySize  = 8
	NameLength = 32 // 31 bytes plus the NUL terminator

	// FirstUniqueID seeds the unique ids handed out by Writer.
	FirstUniqueID = 0x6F8000

	palmEpochOffset = 2082844800 // seconds from 1904-01-01 to 1970-01-01
)

// Errors
var (
	ErrCorrupt        = errors.New("corrupt database")
	ErrIncomplete     = errors.New("database closed before all records were written")
	ErrRecordRange    = errors.New("record index out of range")
	ErrTooManyRecords = errors.New("more records than declared in header")
)

// Attributes are the per-record flag bits stored in a directory entry.
type Attributes uint8

const (
	Delete Attributes = 0x80
	Dirty  Attributes = 0x40
	Busy   Attributes = 0x20
	Secret Attributes = 0x10

	CategoryMask Attributes = 0x0F
)

// Has reports whether every bit of flag is set.
func (a Attributes) Has(flag Attributes) bool {
	return a&flag == flag
}

// Category returns the record category in the low four bits.
func (a Attributes) Category() uint8 {
	return uint8(a & CategoryMask)
}

// Flags names the flag bits that are set.
func (a Attributes) Flags() []string {
	flags := []string{}
	for _, f := range []struct {
		flag Attributes
		name string
	}{{Delete, "delete"}, {Dirty, "dirty"}, {Busy, "busy"}, {Secret, "secret"}} {
		if a.Has(f.flag) {
			flags = append(flags, f.name)
		}
	}
	return flags
}

func (a Attributes) String() string {
	parts := append(a.Flags(), fmt.Sprintf("category=%d", a.Category()))
	return strings.Join(parts, ",")
}

// PalmTime counts seconds since 1904-01-01T00:00:00Z. Zero means unset.
type PalmTime uint32

// NewPalmTime converts t to Palm epoch seconds.
func NewPalmTime(t time.Time) PalmTime {
	return PalmTime(uint32(t.Unix() + palmEpochOffset))
}

// Time converts p back to a time.Time. The zero PalmTime gives the zero time.
func (p PalmTime) Time() time.Time {
	if p == 0 {
		return time.Time{}
	}
	return time.Unix(int64(p)-palmEpochOffset, 0).UTC()
}

// Tag is a four character type or creator code.
type Tag [4]byte

func (t Tag) String() string {
	return string(t[:])
}

// NewTag builds a Tag from the first four bytes of s, NUL padded.
func NewTag(s string) Tag {
	var t Tag
	copy(t[:], s)
	return t
}

// Header is the fixed database header at the start of every PDB file.
type Header struct {
	Name             string
	Attributes       uint16
	Version          uint16
	Created          PalmTime
	Modified         PalmTime
	Backup           PalmTime
	ModNumber        uint32
	AppInfoID        uint32
	SortInfoID       uint32
	Type             Tag
	Creator          Tag
	UniqueIDSeed     uint32
	NextRecordListID uint32
	NumRecords       uint16
}

// encodeName fits name into the 32-byte header field. Longer names are cut
// to 31 bytes with the last three replaced by "...".
func encodeName(name string) [NameLength]byte {
	var out [NameLength]byte
	copy(out[:NameLength-1], name)
	if len(name) > NameLength-1 {
		copy(out[NameLength-4:NameLength-1], "...")
	}
	return out
}

func decodeName(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// MarshalBinary encodes the header into its 78-byte wire form.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	name := encodeName(h.Name)
	copy(buf[0:32], name[:])

	be := binary.BigEndian
	be.PutUint16(buf[32:], h.Attributes)
	be.PutUint16(buf[34:], h.Version)
	be.PutUint32(buf[36:], uint32(h.Created))
	be.PutUint32(buf[40:], uint32(h.Modified))
	be.PutUint32(buf[44:], uint32(h.Backup))
	be.PutUint32(buf[48:], h.ModNumber)
	be.PutUint32(buf[52:], h.AppInfoID)
	be.PutUint32(buf[56:], h.SortInfoID)
	copy(buf[60:64], h.Type[:])
	copy(buf[64:68], h.Creator[:])
	be.PutUint32(buf[68:], h.UniqueIDSeed)
	be.PutUint32(buf[72:], h.NextRecordListID)
	be.PutUint16(buf[76:], h.NumRecords)

	return buf, nil
}

// UnmarshalBinary decodes a 78-byte header.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", ErrCorrupt, len(data), HeaderSize)
	}

	be := binary.BigEndian
	h.Name = decodeName(data[0:32])
	h.Attributes = be.Uint16(data[32:])
	h.Version = be.Uint16(data[34:])
	h.Created = PalmTime(be.Uint32(data[36:]))
	h.Modified = PalmTime(be.Uint32(data[40:]))
	h.Backup = PalmTime(be.Uint32(data[44:]))
	h.ModNumber = be.Uint32(data[48:])
	h.AppInfoID = be.Uint32(data[52:])
	h.SortInfoID = be.Uint32(data[56:])
	copy(h.Type[:], data[60:64])
	copy(h.Creator[:], data[64:68])
	h.UniqueIDSeed = be.Uint32(data[68:])
	h.NextRecordListID = be.Uint32(data[72:])
	h.NumRecords = be.Uint16(data[76:])

	return nil
}

// Entry is one record descriptor in the directory.
type Entry struct {
	Offset     uint32
	Attributes Attributes
	UniqueID   uint32 // 24 bits
}

func (e Entry) put(buf []byte) {
	binary.BigEndian.PutUint32(buf[0:], e.Offset)
	binary.BigEndian.PutUint32(buf[4:], uint32(e.Attributes)<<24|e.UniqueID&0xFFFFFF)
}

func parseEntry(buf []byte) Entry {
	word := binary.BigEndian.Uint32(buf[4:])
	return Entry{
		Offset:     binary.BigEndian.Uint32(buf[0:]),
		Attributes: Attributes(word >> 24),
		UniqueID:   word & 0xFFFFFF,
	}
}

// entryOffset is the file position of directory entry i.
func entryOffset(i int) int64 {
	return HeaderSize + int64(i)*EntrySize
}
