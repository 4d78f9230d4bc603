package source

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/vadim-ktnkv/wordcount/internal/cache"
)

var _ Fetcher = (*CachingFetcher)(nil)

// CachingFetcher keeps recently fetched texts in an LRU cache and collapses
// concurrent fetches of the same address into one request.
type CachingFetcher struct {
	next   Fetcher
	texts  cache.Cache[string]
	group  singleflight.Group
	logger *slog.Logger
}

// NewCachingFetcher wraps next with a cache of size entries. Size 0 disables caching
// but still deduplicates concurrent fetches.
func NewCachingFetcher(next Fetcher, size int, logger *slog.Logger) *CachingFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachingFetcher{
		next:   next,
		texts:  cache.NewCache[string](size),
		logger: logger,
	}
}

// detachCancel keeps parent's deadline but not its cancellation, so a caller
// giving up does not fail the fetch for the others waiting on it.
func detachCancel(parent context.Context) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(parent)
	if dl, ok := parent.Deadline(); ok {
		return context.WithDeadline(ctx, dl)
	}
	return context.WithCancel(ctx)
}

func (c *CachingFetcher) Fetch(ctx context.Context, address string) (string, error) {
	if text, ok := c.texts.Get(cache.Key(address)); ok {
		c.logger.Debug("text cache hit", "url", address)
		return text, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := c.group.DoChan(address, func() (any, error) {
		fetchCtx, cancel := detachCancel(ctx)
		defer cancel()

		text, err := c.next.Fetch(fetchCtx, address)
		if err != nil {
			return "", err
		}
		c.texts.Set(cache.Key(address), text)
		return text, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			c.logger.Debug("shared in-flight fetch", "url", address)
		}
		return res.Val.(string), nil
	}
}
