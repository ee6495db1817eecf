package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client submits inquiries to the relay service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the relay service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit posts the payload to POST /api/mail. A non-2xx response is returned
// as an error carrying the server's message when one was provided.
func (c *Client) Submit(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode inquiry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/mail", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send inquiry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return fmt.Errorf("inquiry rejected (%d): %s: %s", resp.StatusCode, errResp.Error, errResp.Details)
		}
		return fmt.Errorf("inquiry rejected with status %d", resp.StatusCode)
	}

	return nil
}

// Select stashes a product snapshot via PUT /api/products/selected, the
// hand-off a listing view performs when the customer clicks "Inquire Now".
func (c *Client) Select(ctx context.Context, p ProductSnapshot) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/products/selected", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to select product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("product selection rejected with status %d", resp.StatusCode)
	}
	return nil
}

// SelectedProduct fetches the current hand-off snapshot from
// GET /api/products/selected. A 404 means nothing has been selected yet and
// returns (nil, nil).
func (c *Client) SelectedProduct(ctx context.Context) (*ProductSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products/selected", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch selected product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("selected product request failed with status %d", resp.StatusCode)
	}

	var p ProductSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &p, nil
}
