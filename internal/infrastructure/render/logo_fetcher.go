package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultFetchTimeout = 5 * time.Second

// maxAssetBytes caps how much of a remote asset is read into memory.
const maxAssetBytes = 2 << 20

// HTTPAssetFetcher retrieves letterhead assets over HTTP with a bounded
// timeout so a slow CDN cannot stall letter generation.
type HTTPAssetFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPAssetFetcher creates a fetcher. A non-positive timeout falls back to
// the default of five seconds.
func NewHTTPAssetFetcher(timeout time.Duration) *HTTPAssetFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPAssetFetcher{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Fetch downloads the asset at url.
func (f *HTTPAssetFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build asset request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch asset: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return nil, fmt.Errorf("read asset body: %w", err)
	}
	return data, nil
}
