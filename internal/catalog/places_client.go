package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"itinero/internal/config"
)

// SearchFilters narrows a destination search; empty filters match everything.
type SearchFilters struct {
	PriceTiers []PriceTier
	Types      []string
}

// SearchClient is the external places collaborator. Its output shape is a
// hard contract the scheduler depends on; records are normalized before they
// leave this package.
type SearchClient interface {
	Search(ctx context.Context, destination string, filters SearchFilters) ([]Activity, error)
	Details(ctx context.Context, placeID string) (Activity, error)
}

type placesClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

func NewPlacesClient(cfg *config.CatalogConfig, logger *zap.Logger) SearchClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &placesClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

func (c *placesClient) Search(ctx context.Context, destination string, filters SearchFilters) ([]Activity, error) {
	if destination == "" {
		return nil, fmt.Errorf("destination cannot be empty")
	}

	q := url.Values{}
	q.Set("query", destination)
	for _, tier := range filters.PriceTiers {
		q.Add("price_level", string(tier))
	}
	for _, t := range filters.Types {
		q.Add("type", t)
	}

	raw, err := c.get(ctx, "/places/search?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var records []Activity
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	out := make([]Activity, 0, len(records))
	for _, r := range records {
		a, err := Normalize(r)
		if err != nil {
			c.logger.Warn("dropping malformed place record",
				zap.String("place_id", r.PlaceID),
				zap.Error(err))
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (c *placesClient) Details(ctx context.Context, placeID string) (Activity, error) {
	if placeID == "" {
		return Activity{}, fmt.Errorf("placeID cannot be empty")
	}

	raw, err := c.get(ctx, "/places/"+url.PathEscape(placeID))
	if err != nil {
		return Activity{}, err
	}

	var record Activity
	if err := json.Unmarshal(raw, &record); err != nil {
		return Activity{}, fmt.Errorf("failed to decode place response: %w", err)
	}
	return Normalize(record)
}

func (c *placesClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("places collaborator returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path))
		return nil, fmt.Errorf("places API returned status %d", resp.StatusCode)
	}
	return body, nil
}
