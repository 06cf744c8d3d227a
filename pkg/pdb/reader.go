package pdb

import (
	"fmt"
	"io"
)

// Reader gives random access to the records of a PDB file. Record sizes are
// derived from consecutive directory offsets, the last record running to
// the end of the file.
type Reader struct {
	rs      io.ReadSeeker
	header  Header
	entries []Entry
	size    int64
}

// ReadHeader reads only the 78-byte database header from the start of rs.
// It lets callers check the type and creator before trusting the record
// count.
func ReadHeader(rs io.ReadSeeker) (Header, error) {
	var h Header
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return h, err
	}

	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(rs, buf); err != nil {
		return h, truncated("header", err)
	}
	if err := h.UnmarshalBinary(buf); err != nil {
		return h, err
	}
	return h, nil
}

// NewReader reads the header and the directory from rs.
func NewReader(rs io.ReadSeeker) (*Reader, error) {
	h, err := ReadHeader(rs)
	if err != nil {
		return nil, err
	}
	r := &Reader{rs: rs, header: h}

	dir := make([]byte, int(r.header.NumRecords)*EntrySize)
	if _, err := io.ReadFull(rs, dir); err != nil {
		return nil, truncated("record directory", err)
	}
	r.entries = make([]Entry, r.header.NumRecords)
	for i := range r.entries {
		r.entries[i] = parseEntry(dir[i*EntrySize:])
	}

	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	r.size = size

	return r, nil
}

func truncated(what string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: truncated %s", ErrCorrupt, what)
	}
	return err
}

// Header returns the database header.
func (r *Reader) Header() Header {
	return r.header
}

// NumEntries returns the number of directory entries.
func (r *Reader) NumEntries() int {
	return len(r.entries)
}

// Entry returns directory entry i.
func (r *Reader) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(r.entries) {
		return Entry{}, fmt.Errorf("%w: %d of %d", ErrRecordRange, i, len(r.entries))
	}
	return r.entries[i], nil
}

// Size returns the file size in bytes.
func (r *Reader) Size() int64 {
	return r.size
}

// Bounds returns the offset and length of record i.
func (r *Reader) Bounds(i int) (offset, length int64, err error) {
	entry, err := r.Entry(i)
	if err != nil {
		return 0, 0, err
	}

	offset = int64(entry.Offset)
	end := r.size
	if i+1 < len(r.entries) {
		end = int64(r.entries[i+1].Offset)
	}

	dirEnd := entryOffset(len(r.entries))
	if offset < dirEnd || end < offset || end > r.size {
		return 0, 0, fmt.Errorf("%w: record %d spans [%d, %d) in a %d byte file", ErrCorrupt, i, offset, end, r.size)
	}
	return offset, end - offset, nil
}

// Record reads the payload of record i.
func (r *Reader) Record(i int) ([]byte, error) {
	offset, length, err := r.Bounds(i)
	if err != nil {
		return nil, err
	}

	if _, err := r.rs.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r.rs, data); err != nil {
		return nil, truncated(fmt.Sprintf("record %d", i), err)
	}
	return data, nil
}
