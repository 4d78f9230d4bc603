// Package source turns command line arguments into text: files, stdin or
// documents fetched over HTTP.
package source

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Source provides the text to be ranked.
type Source interface {
	Text(ctx context.Context) (string, error)
}

// StdinArg selects standard input as a source.
const StdinArg = "-"

// URL is a Source fetched through a Fetcher.
type URL struct {
	Fetcher Fetcher
	Address string
}

func (u URL) Text(ctx context.Context) (string, error) {
	return u.Fetcher.Fetch(ctx, u.Address)
}

func (u URL) String() string {
	return u.Address
}

// Options carries what Open needs to build any kind of Source.
type Options struct {
	MaxBytes int64
	Fetcher  Fetcher
	Stdin    io.Reader
}

func isURL(arg string) bool {
	lower := strings.ToLower(arg)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open resolves arg into a Source: "-" is stdin, http(s) addresses are
// fetched and everything else is a file path.
func Open(arg string, opts Options) (Source, error) {
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	switch {
	case arg == "":
		return nil, fmt.Errorf("%w: empty argument", ErrUnsupportedSource)
	case arg == StdinArg:
		if opts.Stdin == nil {
			return nil, fmt.Errorf("%w: stdin is not available", ErrUnsupportedSource)
		}
		return Reader{Name: "stdin", R: opts.Stdin, MaxBytes: maxBytes}, nil
	case isURL(arg):
		if opts.Fetcher == nil {
			return nil, fmt.Errorf("%w: no fetcher for %s", ErrUnsupportedSource, arg)
		}
		return URL{Fetcher: opts.Fetcher, Address: arg}, nil
	}
	return File{Path: arg, MaxBytes: maxBytes}, nil
}

// ReadAll concatenates the texts of sources in order, one per line.
func ReadAll(ctx context.Context, sources []Source) (string, error) {
	var sb strings.Builder
	for i, src := range sources {
		text, err := src.Text(ctx)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
