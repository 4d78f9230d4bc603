package source

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"
)

const defaultUserAgent = "wordcount/1.0"

// Fetcher retrieves the text behind an address.
type Fetcher interface {
	Fetch(ctx context.Context, address string) (string, error)
}

var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher downloads text over http or https.
type HTTPFetcher struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	maxBytes   int64
	logger     *slog.Logger
}

// HTTPOption configures HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient sets the HTTP client. Default has 30s timeout. A nil client is ignored.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTPFetcher) {
		if c != nil {
			h.httpClient = c
		}
	}
}

// WithTimeout overrides the client timeout without touching a client passed by WithHTTPClient.
func WithTimeout(d time.Duration) HTTPOption {
	return func(h *HTTPFetcher) {
		h.timeout = d
	}
}

func WithUserAgent(ua string) HTTPOption {
	return func(h *HTTPFetcher) {
		if ua != "" {
			h.userAgent = ua
		}
	}
}

// WithMaxBytes limits the response body size. Values <= 0 keep DefaultMaxBytes.
func WithMaxBytes(n int64) HTTPOption {
	return func(h *HTTPFetcher) {
		if n > 0 {
			h.maxBytes = n
		}
	}
}

func WithLogger(l *slog.Logger) HTTPOption {
	return func(h *HTTPFetcher) {
		if l != nil {
			h.logger = l
		}
	}
}

func NewHTTPFetcher(opts ...HTTPOption) *HTTPFetcher {
	h := &HTTPFetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  defaultUserAgent,
		maxBytes:   DefaultMaxBytes,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.timeout > 0 && h.timeout != h.httpClient.Timeout {
		client := *h.httpClient
		client.Timeout = h.timeout
		h.httpClient = &client
	}
	return h
}

func isHTMLContent(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// Fetch downloads address and returns its body as text. HTML responses are
// reduced to their visible text.
func (h *HTTPFetcher) Fetch(ctx context.Context, address string) (string, error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("%w: parse URL: %w", ErrUnsupportedSource, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedSource, u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	start := time.Now()
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %w: %s %s", ErrFetchFailed, ErrHTTPStatus, resp.Status, address)
	}

	data, err := readLimited(resp.Body, h.maxBytes)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}

	contentType := resp.Header.Get("Content-Type")
	h.logger.Debug("fetched text",
		"url", address,
		"status", resp.StatusCode,
		"content_type", contentType,
		"size", ByteCountIEC(int64(len(data))),
		"elapsed", time.Since(start))

	if isHTMLContent(contentType) {
		return ExtractText(bytes.NewReader(data))
	}
	return string(data), nil
}
