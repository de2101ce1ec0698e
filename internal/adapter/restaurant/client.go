package restaurant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	domainErrors "github.com/quickbite/orderservice/internal/domain/errors"
	"github.com/quickbite/orderservice/internal/domain/model"
)

// Client exposes restaurant directory lookups.
type Client interface {
	Get(ctx context.Context, restaurantID int64) (*model.Restaurant, error)
}

// HTTPClient implements Client via the restaurant service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON payload from the restaurant service.
type response struct {
	RestaurantID int64 `json:"restaurantId"`
	IsOpen       bool  `json:"isOpen"`
}

// NewHTTPClient creates an HTTP restaurant directory client.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse restaurant service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("restaurant service url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Get fetches a restaurant by identifier.
func (c *HTTPClient) Get(ctx context.Context, restaurantID int64) (*model.Restaurant, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/restaurants/", strconv.FormatInt(restaurantID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("restaurant service unreachable", slog.String("error", err.Error()))
		return nil, domainErrors.ErrUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, domainErrors.ErrUnavailable
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			c.logger.Error("malformed restaurant payload", slog.String("error", err.Error()))
			return nil, domainErrors.ErrUnavailable
		}
		return &model.Restaurant{ID: data.RestaurantID, IsOpen: data.IsOpen}, nil
	case http.StatusNotFound:
		return nil, domainErrors.ErrRestaurantNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("restaurant request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, domainErrors.ErrUnavailable
	}
}
