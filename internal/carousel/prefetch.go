package carousel

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPPrefetcher warms images with a HEAD request, which is enough for CDNs
// and proxies in front of the image host to cache them.
type HTTPPrefetcher struct {
	client *http.Client
}

func NewHTTPPrefetcher(client *http.Client) *HTTPPrefetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &HTTPPrefetcher{client: client}
}

func (p *HTTPPrefetcher) Prefetch(ctx context.Context, url string) error {
	const op = "carousel.HTTPPrefetcher.Prefetch"

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	return nil
}
