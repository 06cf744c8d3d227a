package pdb

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Writer lays out a PDB file whose record count is known up front. The
// directory is written with placeholder offsets; each WriteRecord patches
// its own entry with the position the payload lands at.
type Writer struct {
	ws       io.WriteSeeker
	declared int
	written  int
}

// NewWriter writes h and a directory of h.NumRecords entries to ws. Entry 0
// points just past the directory, the others stay zero until their record
// is written. Every entry is marked dirty and gets a fresh unique id.
func NewWriter(ws io.WriteSeeker, h Header) (*Writer, error) {
	hdr, err := h.MarshalBinary()
	if err != nil {
		return nil, err
	}

	n := int(h.NumRecords)
	dir := make([]byte, n*EntrySize)
	for i := 0; i < n; i++ {
		e := Entry{Attributes: Dirty, UniqueID: FirstUniqueID + uint32(i)}
		if i == 0 {
			e.Offset = uint32(entryOffset(n))
		}
		e.put(dir[i*EntrySize:])
	}

	if _, err := ws.Write(hdr); err != nil {
		return nil, err
	}
	if _, err := ws.Write(dir); err != nil {
		return nil, err
	}

	return &Writer{ws: ws, declared: n}, nil
}

// WriteRecord appends the next record at the current position and points
// its directory entry at it.
func (w *Writer) WriteRecord(payload []byte) error {
	if w.written >= w.declared {
		return fmt.Errorf("%w: %d", ErrTooManyRecords, w.declared)
	}

	pos, err := w.ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	if _, err := w.ws.Seek(entryOffset(w.written), io.SeekStart); err != nil {
		return err
	}
	var off [4]byte
	binary.BigEndian.PutUint32(off[:], uint32(pos))
	if _, err := w.ws.Write(off[:]); err != nil {
		return err
	}

	if _, err := w.ws.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.ws.Write(payload); err != nil {
		return err
	}

	w.written++
	return nil
}

// Written returns the number of records written so far.
func (w *Writer) Written() int {
	return w.written
}

// Close checks that every declared record was written. It does not close
// the underlying stream.
func (w *Writer) Close() error {
	if w.written < w.declared {
		return fmt.Errorf("%w: %d of %d", ErrIncomplete, w.written, w.declared)
	}
	return nil
}
