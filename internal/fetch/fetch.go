// Package fetch downloads remote artifacts over HTTP.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds a single download.
const DefaultTimeout = 5 * time.Minute

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URI        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response from %s: %s", e.URI, e.Status)
}

// Client downloads artifacts with a single GET request. Requests are never retried.
type Client struct {
	client *resty.Client
}

// New returns a Client with the default timeout.
func New() *Client {
	return NewWithClient(resty.New().SetTimeout(DefaultTimeout))
}

// NewWithClient returns a Client backed by the given resty client.
func NewWithClient(client *resty.Client) *Client {
	return &Client{client: client.SetRetryCount(0)}
}

// Fetch returns the response body of a GET request to uri.
func (c *Client) Fetch(ctx context.Context, uri string) ([]byte, error) {
	resp, err := c.client.R().SetContext(ctx).Get(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", uri, err)
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{URI: uri, StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	return resp.Body(), nil
}
