package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxBytes bounds how much text a single source may produce (16 MiB).
const DefaultMaxBytes = 16 << 20

func ByteCountIEC(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB",
		float64(b)/float64(div), "KMGTPE"[exp])
}

// readLimited reads r to the end and fails with ErrTooLarge past maxBytes.
func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return nil, ErrInvalidLimit
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %s", ErrTooLarge, ByteCountIEC(maxBytes))
	}
	return data, nil
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// ReadFile returns the text of a regular file of at most maxBytes.
// Files with an HTML extension are reduced to their visible text.
func ReadFile(path string, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		return "", ErrInvalidLimit
	}

	inFile, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedSource, err)
	}
	defer inFile.Close()

	stats, err := inFile.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedSource, err)
	}
	if !stats.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	if stats.Size() > maxBytes {
		return "", fmt.Errorf("%w: %s is %s, limit %s",
			ErrTooLarge, path, ByteCountIEC(stats.Size()), ByteCountIEC(maxBytes))
	}

	if isHTMLFile(path) {
		return ExtractText(io.LimitReader(inFile, maxBytes))
	}

	data, err := readLimited(inFile, maxBytes)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// File is a Source backed by a file on disk.
type File struct {
	Path     string
	MaxBytes int64
}

func (f File) Text(_ context.Context) (string, error) {
	return ReadFile(f.Path, f.MaxBytes)
}

func (f File) String() string {
	return f.Path
}

// Reader is a Source backed by a stream such as stdin.
type Reader struct {
	Name     string
	R        io.Reader
	MaxBytes int64
}

func (r Reader) Text(_ context.Context) (string, error) {
	data, err := readLimited(r.R, r.MaxBytes)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", r.Name, err)
	}
	return string(data), nil
}

func (r Reader) String() string {
	return r.Name
}
