package fetch

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/arloliu/idxset/errs"
)

// Router dispatches Fetch calls to the fetcher registered for the URL scheme.
//
// A Router is configured before use and is then safe for concurrent Fetch calls.
type Router struct {
	fetchers map[string]Fetcher
}

var _ Fetcher = (*Router)(nil)

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{fetchers: make(map[string]Fetcher)}
}

// NewDefaultRouter creates a router with http, https and file fetchers.
// S3 and MinIO fetchers need clients and are registered by the caller.
func NewDefaultRouter(opts ...Option) (*Router, error) {
	httpFetcher, err := NewHTTPFetcher(opts...)
	if err != nil {
		return nil, err
	}
	fileFetcher, err := NewFileFetcher(opts...)
	if err != nil {
		return nil, err
	}

	return NewRouter().
		Register("http", httpFetcher).
		Register("https", httpFetcher).
		Register("file", fileFetcher), nil
}

// Register binds fetcher to scheme, replacing any previous binding.
func (r *Router) Register(scheme string, fetcher Fetcher) *Router {
	r.fetchers[scheme] = fetcher
	return r
}

// Schemes returns the registered schemes in sorted order.
func (r *Router) Schemes() []string {
	return slices.Sorted(maps.Keys(r.fetchers))
}

// Fetch routes remote to the fetcher registered for its scheme.
func (r *Router) Fetch(ctx context.Context, remote, localPath string) error {
	u, err := parseRemote(remote)
	if err != nil {
		return err
	}

	fetcher, ok := r.fetchers[u.Scheme]
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnsupportedScheme, u.Scheme)
	}

	return fetcher.Fetch(ctx, remote, localPath)
}
