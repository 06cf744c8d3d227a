// Package convert drives whole-file conversions between UTF-8 text and
// PalmDoc files, one record at a time.
package convert

import (
	"errors"
	"io"
)

// Direction tells encode events from decode events.
type Direction string

const (
	Encoding Direction = "encode"
	Decoding Direction = "decode"
)

// RecordEvent reports one finished text record.
type RecordEvent struct {
	Direction Direction
	Record    int // 1-based
	Total     int
	In        int // bytes before the codec
	Out       int // bytes after the codec
}

// Listener is notified after every record.
type Listener interface {
	RecordDone(RecordEvent)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(RecordEvent)

func (f ListenerFunc) RecordDone(e RecordEvent) { f(e) }

type multiListener []Listener

func (m multiListener) RecordDone(e RecordEvent) {
	for _, l := range m {
		l.RecordDone(e)
	}
}

// Listeners combines several listeners into one, skipping nils.
func Listeners(ls ...Listener) Listener {
	var m multiListener
	for _, l := range ls {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

// Stats summarises a conversion.
type Stats struct {
	Records int
	// InputBytes and OutputBytes count record bytes on either side of the
	// codec: uncompressed then stored when encoding, stored then
	// uncompressed when decoding.
	InputBytes  int64
	OutputBytes int64
	// TextBytes counts UTF-8 bytes read (encode) or written (decode).
	TextBytes int64
	Warnings  int
}

// Ratio returns OutputBytes/InputBytes, or 0 when nothing was read.
func (s *Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes)
}

func (s *Stats) add(e RecordEvent) {
	s.Records++
	s.InputBytes += int64(e.In)
	s.OutputBytes += int64(e.Out)
}

// IOError is a failed read, write or seek on one of the conversion's
// streams.
type IOError struct {
	Op   string // "read", "write" or "seek"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

func ioError(op, path string, err error) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// source tags errors from the input stream. End of file passes through
// untouched so short reads are still seen as truncation.
type source struct {
	r    io.Reader
	path string
}

func (s *source) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		err = ioError("read", s.path, err)
	}
	return n, err
}

func (s *source) Seek(offset int64, whence int) (int64, error) {
	seeker, ok := s.r.(io.Seeker)
	if !ok {
		return 0, ioError("seek", s.path, errors.New("input is not seekable"))
	}
	n, err := seeker.Seek(offset, whence)
	if err != nil {
		err = ioError("seek", s.path, err)
	}
	return n, err
}

// sink tags errors from the output stream.
type sink struct {
	w    io.Writer
	path string
}

func (s *sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		err = ioError("write", s.path, err)
	}
	return n, err
}

func (s *sink) Seek(offset int64, whence int) (int64, error) {
	seeker, ok := s.w.(io.Seeker)
	if !ok {
		return 0, ioError("seek", s.path, errors.New("output is not seekable"))
	}
	n, err := seeker.Seek(offset, whence)
	if err != nil {
		err = ioError("seek", s.path, err)
	}
	return n, err
}
