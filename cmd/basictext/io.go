package main

import (
	"io"
	"os"

	clierrors "github.com/musher-dev/basictext/internal/errors"
)

// openInput returns a reader for path, or stdin when path is empty or "-".
// The caller is responsible for closing the returned io.Closer when it is
// not stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, clierrors.UnderlyingIOFailed("open input", err)
	}

	return f, nil
}

// openOutput returns a writer for path, or stdout when path is empty or "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, clierrors.UnderlyingIOFailed("create output", err)
	}

	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
