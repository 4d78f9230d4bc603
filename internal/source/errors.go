package source

import "errors"

// Sentinel errors returned by text sources. Callers match them with errors.Is.
var (
	ErrUnsupportedSource = errors.New("source: unsupported source")
	ErrNotRegularFile    = errors.New("source: not a regular file")
	ErrTooLarge          = errors.New("source: text exceeds size limit")
	ErrInvalidLimit      = errors.New("source: size limit must be > 0")
	ErrFetchFailed       = errors.New("source: fetch failed")
	ErrHTTPStatus        = errors.New("source: unexpected HTTP status")
	ErrInvalidHTML       = errors.New("source: cannot parse HTML")
)
