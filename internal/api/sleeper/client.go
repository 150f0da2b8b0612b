package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/omarshaarawi/sleeperstats/internal/metrics"
	"github.com/omarshaarawi/sleeperstats/internal/repository/file"
)

const DefaultBaseURL = "https://api.sleeper.app/v1"

// Client reads Sleeper endpoints through a disk cache. Refresh bypasses the
// cache for reads but still rewrites it.
type Client struct {
	httpClient *http.Client
	cache      *file.Repository
	BaseURL    string
	Refresh    bool
}

func NewClient(cache *file.Repository, refresh bool) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		cache:      cache,
		BaseURL:    DefaultBaseURL,
		Refresh:    refresh,
	}
}

// Get decodes endpoint into result. cachePath names the file under the cache
// root; endpoint labels the request in metrics.
func (c *Client) Get(ctx context.Context, label, endpoint, cachePath string, result any) error {
	body, err := c.fetch(ctx, label, endpoint, cachePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("error decoding %s: %w", endpoint, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, label, endpoint, cachePath string) ([]byte, error) {
	if !c.Refresh {
		body, ok, err := c.cache.Read(cachePath)
		if err != nil {
			return nil, err
		}
		if ok {
			metrics.SleeperRequests.WithLabelValues(label, "cache").Inc()
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.SleeperErrors.WithLabelValues(label).Inc()
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.SleeperErrors.WithLabelValues(label).Inc()
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		metrics.SleeperErrors.WithLabelValues(label).Inc()
		return nil, fmt.Errorf("GET %s: unexpected status code: %d", endpoint, resp.StatusCode)
	}
	metrics.SleeperRequests.WithLabelValues(label, "network").Inc()

	if err := c.cache.Write(cachePath, body); err != nil {
		slog.Warn("Failed to cache response", "endpoint", endpoint, "error", err)
	}
	return body, nil
}
