package writers

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyWriteCloserDefersInit(t *testing.T) {
	calls := 0
	w := NewLazyWriteCloser(func() (io.WriteCloser, error) {
		calls++
		return nopCloser{io.Discard}, nil
	})
	require.NoError(t, w.Close())
	assert.False(t, w.Opened())
	assert.Zero(t, calls)

	_, err := w.Write([]byte("a"))
	require.NoError(t, err)
	_, err = w.Write([]byte("b"))
	require.NoError(t, err)
	assert.True(t, w.Opened())
	assert.Equal(t, 1, calls)
}

func TestLazyWriteCloserInitError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	w := NewLazyWriteCloser(func() (io.WriteCloser, error) {
		calls++
		return nil, boom
	})
	for range 2 {
		n, err := w.Write([]byte("a"))
		require.ErrorIs(t, err, boom)
		assert.Zero(t, n)
	}
	assert.Equal(t, 1, calls)
	require.NoError(t, w.Close())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer\n"), 0644))

	w := Open(path, io.Discard)
	_, err := io.WriteString(w, "fresh\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(b))
}

func TestOpenNeverWrittenLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Open(path, io.Discard).Close())

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenStdout(t *testing.T) {
	for _, location := range []string{"", Stdout} {
		var buf bytes.Buffer
		w := Open(location, &buf)
		_, err := io.WriteString(w, "out")
		require.NoError(t, err)
		require.NoError(t, w.Close())
		assert.Equal(t, "out", buf.String())
	}
}
