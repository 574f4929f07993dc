package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Stdio is the path that selects stdin or stdout. An empty path does too.
const Stdio = "-"

func isStdio(path string) bool {
	return path == "" || path == Stdio
}

type zstdReadCloser struct {
	*zstd.Decoder
	file *os.File
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}

type zstdWriteCloser struct {
	*zstd.Encoder
	file *os.File
}

func (z *zstdWriteCloser) Close() error {
	if err := z.Encoder.Close(); err != nil {
		z.file.Close()
		return err
	}
	return z.file.Close()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// OpenInput opens path for reading. Stdin is used for an empty path or "-";
// a .zst suffix means the file is zstd compressed.
func OpenInput(path string) (io.ReadCloser, error) {
	if isStdio(path) {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not read zstd stream %s: %w", path, err)
	}
	return &zstdReadCloser{Decoder: dec, file: f}, nil
}

// CreateOutput creates or truncates path. Stdout is used for an empty path
// or "-" and is never closed. A .zst suffix compresses the output.
func CreateOutput(path string) (io.WriteCloser, error) {
	if isStdio(path) {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not start zstd stream %s: %w", path, err)
	}
	return &zstdWriteCloser{Encoder: enc, file: f}, nil
}
