/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/ssargent/palmdoc/pkg/codec"
	"github.com/ssargent/palmdoc/pkg/convert"
	"github.com/ssargent/palmdoc/pkg/doc"
	"github.com/ssargent/palmdoc/pkg/dump"
	"github.com/ssargent/palmdoc/pkg/pdb"
)

// Process exit codes
const (
	exitOK                 = 0
	exitUsage              = 1
	exitOutOfMemory        = 2
	exitOpen               = 10
	exitRead               = 11
	exitWrite              = 12
	exitSeek               = 13
	exitNotDocFile         = 20
	exitUnknownCompression = 21
	exitCorrupt            = 22
)

// usageError marks bad arguments, flags or configuration
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

// usageArgs marks argument validation failures as usage errors
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// exitCode maps an error returned by a command to the process exit status
func exitCode(err error) int {
	var (
		ue      usageError
		ioErr   *convert.IOError
		pathErr *fs.PathError
	)

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue), errors.Is(err, dump.ErrOptions):
		return exitUsage
	case errors.As(err, &ioErr):
		return ioExitCode(ioErr.Op)
	case errors.As(err, &pathErr):
		return ioExitCode(pathErr.Op)
	case errors.Is(err, doc.ErrNotDocFile):
		return exitNotDocFile
	case errors.Is(err, doc.ErrUnknownCompression):
		return exitUnknownCompression
	case errors.Is(err, pdb.ErrCorrupt),
		errors.Is(err, codec.ErrMalformed),
		errors.Is(err, codec.ErrRecordOverflow):
		return exitCorrupt
	case errors.Is(err, doc.ErrTooLarge):
		// more text than a Doc file can address
		return exitOutOfMemory
	}
	return exitUsage
}

func ioExitCode(op string) int {
	switch op {
	case "open":
		return exitOpen
	case "write":
		return exitWrite
	case "seek":
		return exitSeek
	default:
		return exitRead
	}
}
