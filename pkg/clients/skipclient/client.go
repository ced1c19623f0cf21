package skipclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jakechorley/skip-hire/pkg/core/model"
)

const byLocationPath = "/api/skips/by-location"

var (
	// ErrTransport covers requests that could not complete or returned a non-2xx status
	ErrTransport = errors.New("skip lookup request failed")
	// ErrInvalidPayload covers responses that are not a non-empty list of valid skips
	ErrInvalidPayload = errors.New("invalid skip lookup payload")
)

// skipList wraps the decoded payload so the whole list can be validated at once
type skipList struct {
	Skips []model.RawSkipRecord `validate:"required,min=1,unique=ID,dive"`
}

var validate = validator.New()

// Client fetches skips from the skip-lookup API
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for the API at baseURL. A zero timeout leaves the
// request bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP creates a client using the given http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// GetSkipsByLocation retrieves the raw skip records available at a location
func (c *Client) GetSkipsByLocation(ctx context.Context, location model.Location) ([]model.RawSkipRecord, error) {
	endpoint := c.byLocationURL(location)
	c.logger.Debug("Requesting skips", zap.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, string(b))
	}

	var skips []model.RawSkipRecord
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&skips); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidPayload, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after skip list", ErrInvalidPayload)
	}

	if err := validate.Struct(skipList{Skips: skips}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	c.logger.Debug("Skips received", zap.Int("count", len(skips)))
	return skips, nil
}

func (c *Client) byLocationURL(location model.Location) string {
	query := url.Values{}
	query.Set("postcode", location.Postcode)
	query.Set("area", location.Area)
	return c.baseURL + byLocationPath + "?" + query.Encode()
}
