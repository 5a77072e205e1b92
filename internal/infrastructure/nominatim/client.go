// Package nominatim reverse-geocodes coordinates through an OpenStreetMap
// Nominatim server.
package nominatim

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/logger"

	"github.com/goccy/go-json"
)

const DefaultURL = "https://nominatim.openstreetmap.org"

// Client calls Nominatim directly. Nominatim's usage policy requires an
// identifying User-Agent on every request.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if userAgent == "" {
		userAgent = "hometex-storefront"
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Error       string `json:"error"`
	Address     struct {
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		Suburb        string `json:"suburb"`
		State         string `json:"state"`
		StateDistrict string `json:"state_district"`
		County        string `json:"county"`
		Country       string `json:"country"`
		CountryCode   string `json:"country_code"`
		Postcode      string `json:"postcode"`
	} `json:"address"`
}

// Reverse resolves lat/lon to an address. Coordinates that resolve to nothing
// return domain.ErrLocationNotFound.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: %f,%f", domain.ErrInvalidCoordinates, lat, lon)
	}

	url := fmt.Sprintf("%s/reverse?format=json&addressdetails=1&lat=%s&lon=%s",
		c.baseURL, strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Outbound(ctx, "nominatim", http.MethodGet, url, 0, time.Since(start), err)
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()
	logger.Outbound(ctx, "nominatim", http.MethodGet, url, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nominatim error (status %d): %s", resp.StatusCode, string(body))
	}

	var out reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	if out.Error != "" || out.DisplayName == "" {
		return nil, domain.ErrLocationNotFound
	}

	info := &domain.LocationInfo{
		DisplayName: out.DisplayName,
		City:        first(out.Address.City, out.Address.Town, out.Address.Village, out.Address.Suburb),
		State:       out.Address.State,
		District:    first(out.Address.StateDistrict, out.Address.County),
		Country:     out.Address.Country,
		CountryCode: strings.ToUpper(out.Address.CountryCode),
		Postcode:    out.Address.Postcode,
		Latitude:    lat,
		Longitude:   lon,
	}
	if v, err := strconv.ParseFloat(out.Lat, 64); err == nil {
		info.Latitude = v
	}
	if v, err := strconv.ParseFloat(out.Lon, 64); err == nil {
		info.Longitude = v
	}
	return info, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
