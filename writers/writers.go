// Package writers opens command output destinations.
package writers

import (
	"io"
	"io/fs"
	"os"
)

const Stdout = "-"

// NewDelayFileWriter opens path on the first write. Arguments are similar to
// os.OpenFile().
func NewDelayFileWriter(path string, flags int, perms fs.FileMode) *LazyWriteCloser {
	return NewLazyWriteCloser(func() (io.WriteCloser, error) {
		return os.OpenFile(path, flags, perms)
	})
}

// Open returns a writer for an output location: stdout for "" or "-", and a
// file that is only created (or truncated) once something is written to it
// otherwise. Closing the stdout writer leaves stdout open.
func Open(location string, stdout io.Writer) io.WriteCloser {
	if location == "" || location == Stdout {
		return nopCloser{stdout}
	}
	return NewDelayFileWriter(location, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
