package gperf

import (
	"os"
	"strings"
	"unicode/utf8"
)

// validatePath runs every check a path or dump reason must pass before it
// is handed to the native library.
func validatePath(path string) error {
	if strings.IndexByte(path, 0) >= 0 {
		return ErrNulByte
	}
	if !utf8.ValidString(path) {
		return ErrInvalidEncoding
	}
	return checkFilePath(path)
}

// checkFilePath confirms the process can write to path by creating (or
// truncating) the file once. The native library opens the path again
// itself later; the gap between this check and that open is an accepted
// race. On a subsequent native failure the empty file created here is left
// behind.
func checkFilePath(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}
