// Package gateway holds the thin data-access wrappers that forward CRUD
// calls to the backend of record. The gateways own no state beyond a
// per-domain loading flag and error slot; the store is never touched here.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Client is the shared HTTP transport to the backend.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *logrus.Logger
}

func NewClient(baseURL string, httpc *http.Client, log *logrus.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpc: httpc, log: log}
}

// WithHTTPClient returns a copy of the client using a different transport,
// e.g. one that attaches a freshly obtained session token.
func (c *Client) WithHTTPClient(httpc *http.Client) *Client {
	return &Client{baseURL: c.baseURL, httpc: httpc, log: c.log}
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one round trip. A non-2xx response is surfaced as an error
// carrying the backend's human-readable message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("calling backend")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil && eb.Message != "" {
			return errors.New(eb.Message)
		}
		return fmt.Errorf("backend returned %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
