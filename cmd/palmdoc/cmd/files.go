/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/palmdoc/pkg/convert"
)

const stdio = "-"

// displayName names a path in errors and logs
func displayName(path, std string) string {
	if path == stdio {
		return std
	}
	return path
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &convert.IOError{Op: "open", Path: path, Err: err}
	}
	return f, nil
}

// openSeekable opens path, or buffers all of in when path is "-" since a
// Doc file is read out of order
func openSeekable(path string, in io.Reader) (io.ReadSeeker, func(), error) {
	if path == stdio {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, nil, &convert.IOError{Op: "read", Path: "<stdin>", Err: err}
		}
		return bytes.NewReader(data), func() {}, nil
	}

	f, err := openInput(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// output is a temporary file next to its destination. commit renames it
// into place; discard removes it.
type output struct {
	*os.File
	dest string
}

func createOutput(dest string) (*output, error) {
	tmp := filepath.Join(filepath.Dir(dest),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(dest), ksuid.New().String()))

	f, err := os.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, &convert.IOError{Op: "open", Path: dest, Err: err}
	}
	return &output{File: f, dest: dest}, nil
}

func (o *output) commit() error {
	if err := o.File.Close(); err != nil {
		os.Remove(o.Name())
		return &convert.IOError{Op: "write", Path: o.dest, Err: err}
	}
	if err := os.Rename(o.Name(), o.dest); err != nil {
		os.Remove(o.Name())
		return &convert.IOError{Op: "write", Path: o.dest, Err: err}
	}
	return nil
}

func (o *output) discard() {
	o.File.Close()
	os.Remove(o.Name())
}
