// Package packzy reads parcel delivery status from the Packzy courier portal.
package packzy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/logger"

	"github.com/goccy/go-json"
)

const DefaultURL = "https://portal.packzy.com/api/v1"

type Client struct {
	baseURL    string
	apiKey     string
	secretKey  string
	httpClient *http.Client
}

// NewClient returns nil when credentials are missing; a nil client reports
// domain.ErrTrackingUnavailable for every lookup.
func NewClient(baseURL, apiKey, secretKey string) *Client {
	if apiKey == "" || secretKey == "" {
		logger.Warn().Msg("Packzy API credentials not configured. Courier tracking disabled.")
		return nil
	}
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type statusResponse struct {
	Status         int    `json:"status"`
	DeliveryStatus string `json:"delivery_status"`
	Message        string `json:"message"`
}

func (c *Client) StatusByConsignment(ctx context.Context, consignmentID string) (*domain.TrackingStatus, error) {
	st, err := c.status(ctx, "/status_by_cid/"+url.PathEscape(consignmentID))
	if err != nil {
		return nil, err
	}
	st.ConsignmentID = consignmentID
	return st, nil
}

func (c *Client) StatusByInvoice(ctx context.Context, invoice string) (*domain.TrackingStatus, error) {
	st, err := c.status(ctx, "/status_by_invoice/"+url.PathEscape(invoice))
	if err != nil {
		return nil, err
	}
	st.Invoice = invoice
	return st, nil
}

func (c *Client) StatusByTrackingCode(ctx context.Context, code string) (*domain.TrackingStatus, error) {
	st, err := c.status(ctx, "/status_by_trackingcode/"+url.PathEscape(code))
	if err != nil {
		return nil, err
	}
	st.TrackingCode = code
	return st, nil
}

func (c *Client) status(ctx context.Context, path string) (*domain.TrackingStatus, error) {
	if c == nil {
		return nil, domain.ErrTrackingUnavailable
	}

	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Secret-Key", c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Outbound(ctx, "packzy", http.MethodGet, endpoint, 0, time.Since(start), err)
		return nil, fmt.Errorf("packzy request failed: %w", err)
	}
	defer resp.Body.Close()
	logger.Outbound(ctx, "packzy", http.MethodGet, endpoint, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrTrackingUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("packzy error (status %d): %s", resp.StatusCode, string(body))
	}

	var out statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode packzy response: %w", err)
	}
	// The portal answers 200 with its own status field for unknown parcels.
	if out.Status != http.StatusOK || out.DeliveryStatus == "" {
		return nil, domain.ErrTrackingUnavailable
	}
	return &domain.TrackingStatus{Status: out.DeliveryStatus}, nil
}
