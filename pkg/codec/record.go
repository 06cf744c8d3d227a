package codec

import (
	"errors"
)

const (
	// MaxRecordSize is the largest uncompressed record a Doc reader accepts.
	MaxRecordSize = 4096

	countBits = 3  // width of the length field of a back-reference
	distBits  = 11 // width of the distance field of a back-reference

	// MaxDistance is the furthest a back-reference can reach.
	MaxDistance = 1<<distBits - 1

	// MinMatch and MaxMatch bound the number of bytes one back-reference copies.
	MinMatch = 3
	MaxMatch = MinMatch + 1<<countBits - 1
)

// Errors returned by the codec. Decompression failures wrap ErrMalformed or
// ErrRecordOverflow so callers can use errors.Is.
var (
	ErrRecordTooLarge = errors.New("record exceeds maximum size")
	ErrRecordOverflow = errors.New("decompressed record exceeds maximum size")
	ErrMalformed      = errors.New("malformed compressed record")
	ErrInternal       = errors.New("compressor produced an unencodable back-reference")
)

// Option configures a RecordCodec.
type Option func(*RecordCodec)

// WithMaxRecordSize raises the decompression output limit. Values below
// MaxRecordSize are ignored.
func WithMaxRecordSize(n int) Option {
	return func(c *RecordCodec) {
		if n > MaxRecordSize {
			c.maxRecordSize = n
		}
	}
}

// RecordCodec compresses and decompresses single PalmDoc records
type RecordCodec struct {
	maxRecordSize int
}

// NewRecordCodec creates a new record codec instance
func NewRecordCodec(opts ...Option) *RecordCodec {
	c := &RecordCodec{maxRecordSize: MaxRecordSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxRecordSize returns the decompression output limit in bytes.
func (c *RecordCodec) MaxRecordSize() int {
	return c.maxRecordSize
}
