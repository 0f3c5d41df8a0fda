package http

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/piresc/campusride/internal/pkg/logger"
	nr "github.com/piresc/campusride/internal/pkg/newrelic"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
)

// StatusError is returned when the remote service answers with a 4xx or 5xx
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d from %s", e.StatusCode, e.URL)
}

// APIKeyClient is an HTTP client for service-to-service calls authenticated
// with an API key.
type APIKeyClient struct {
	client      *nethttp.Client
	apiKey      string
	baseURL     string
	serviceName string
}

// NewAPIKeyClient creates a client for serviceName rooted at baseURL
func NewAPIKeyClient(serviceName, baseURL, apiKey string, timeout time.Duration) *APIKeyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &APIKeyClient{
		client:      &nethttp.Client{Timeout: timeout},
		apiKey:      apiKey,
		baseURL:     baseURL,
		serviceName: serviceName,
	}
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *APIKeyClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	url := c.baseURL + endpoint

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", req.Method),
		logger.String("url", url),
		logger.String("service", c.serviceName))

	resp, err := nr.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.client.Do(req)
	})
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", c.serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", c.serviceName, err)
		}
	}
	return nil
}
