package writers

import (
	"io"
)

// Delays initialization until the writer is written to
type LazyWriteCloser struct {
	init   func() (io.WriteCloser, error)
	writer io.WriteCloser
	err    error
}

// Creates a new `LazyWriteCloser`. An initialization function is passed and is
// called once when the `LazyWriteCloser` is first written to. A failed
// initialization is not retried.
func NewLazyWriteCloser(init func() (io.WriteCloser, error)) *LazyWriteCloser {
	return &LazyWriteCloser{init: init, writer: nil}
}

func (f *LazyWriteCloser) Write(p []byte) (int, error) {
	if f.writer == nil && f.err == nil {
		f.writer, f.err = f.init()
	}
	if f.err != nil {
		return 0, f.err
	}

	return f.writer.Write(p)
}

// Opened reports whether the underlying writer was created.
func (f *LazyWriteCloser) Opened() bool {
	return f.writer != nil
}

func (f *LazyWriteCloser) Close() error {
	if f.writer != nil {
		return f.writer.Close()
	}
	return nil
}
