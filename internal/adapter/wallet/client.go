package wallet

import (
	"bytes"
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

	"github.com/shopspring/decimal"

	domainErrors "github.com/quickbite/orderservice/internal/domain/errors"
)

// Client exposes wallet operations on the user service. SetBalance is an
// idempotent absolute set; there is no debit-if-sufficient primitive, so the
// coordinator reads, computes and writes back.
type Client interface {
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) (decimal.Decimal, error)
}

// HTTPClient implements Client via the user service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// walletResponse mirrors the JSON payload from the user service.
type walletResponse struct {
	UserID  int64           `json:"userId"`
	Balance decimal.Decimal `json:"balance"`
}

type setBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// NewHTTPClient creates an HTTP wallet client.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse user service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("user service url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// GetBalance fetches the current wallet balance of a user.
func (c *HTTPClient) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	req, err := c.newRequest(ctx, http.MethodGet, userID, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return c.do(req)
}

// SetBalance overwrites the wallet balance and returns the stored value.
func (c *HTTPClient) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) (decimal.Decimal, error) {
	body, err := json.Marshal(setBalanceRequest{Balance: balance})
	if err != nil {
		return decimal.Zero, err
	}
	req, err := c.newRequest(ctx, http.MethodPut, userID, bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *HTTPClient) newRequest(ctx context.Context, method string, userID int64, body io.Reader) (*http.Request, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/users/", strconv.FormatInt(userID, 10), "/wallet")

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *HTTPClient) do(req *http.Request) (decimal.Decimal, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("user service unreachable", slog.String("error", err.Error()))
		return decimal.Zero, domainErrors.ErrUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return decimal.Zero, domainErrors.ErrUnavailable
		}
		var data walletResponse
		if err := json.Unmarshal(body, &data); err != nil {
			c.logger.Error("malformed wallet payload", slog.String("error", err.Error()))
			return decimal.Zero, domainErrors.ErrUnavailable
		}
		return data.Balance, nil
	case http.StatusNotFound:
		return decimal.Zero, domainErrors.ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("wallet request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return decimal.Zero, domainErrors.ErrUnavailable
	}
}
