package gperf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFilePathWritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.prof")
	require.NoError(t, checkFilePath(path))

	// the pre-check leaves an empty file behind
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 0, fi.Size())
}

func TestCheckFilePathTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.prof")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o644))

	require.NoError(t, checkFilePath(path))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 0, fi.Size())
}

func TestCheckFilePathMissingDirectory(t *testing.T) {
	err := checkFilePath(filepath.Join(t.TempDir(), "no-such-dir", "out.prof"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Contains(t, ioErr.Path, "out.prof")
}

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, validatePath(filepath.Join(dir, "ok.prof")))
	assert.ErrorIs(t, validatePath("foo\x00bar"), ErrNulByte)
	assert.ErrorIs(t, validatePath(string([]byte{0xff, 0xfe, '.', 'p'})), ErrInvalidEncoding)
	assert.ErrorIs(t, validatePath(filepath.Join(dir, "missing", "x.prof")), ErrIO)
}
