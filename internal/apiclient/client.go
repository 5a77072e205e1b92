package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/logger"

	"golang.org/x/time/rate"
)

// Mode selects how requests reach the API.
type Mode string

const (
	// ModeDirect sends every request straight to the production API.
	ModeDirect Mode = "direct"
	// ModeFallback tries the local API first and falls back to production.
	ModeFallback Mode = "fallback"
)

// DefaultLocalTimeout bounds the local attempt in fallback mode.
const DefaultLocalTimeout = 3 * time.Second

type Options struct {
	BaseURL      string
	LocalURL     string
	Mode         Mode
	LocalTimeout time.Duration
	HTTPClient   *http.Client
	Tokens       domain.TokenStore
	// Limiter, when set, throttles requests sent to the production API.
	Limiter *rate.Limiter
}

// Client talks to the storefront REST API.
type Client struct {
	baseURL      string
	localURL     string
	mode         Mode
	localTimeout time.Duration
	httpClient   *http.Client
	noCookies    *http.Client
	tokens       domain.TokenStore
	limiter      *rate.Limiter
}

type sendFunc func(ctx context.Context, url string, r Request) (*http.Response, error)

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	noCookies := *hc
	noCookies.Jar = nil

	timeout := opts.LocalTimeout
	if timeout <= 0 {
		timeout = DefaultLocalTimeout
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeDirect
	}

	return &Client{
		baseURL:      strings.TrimRight(NormalizeURL(opts.BaseURL), "/"),
		localURL:     strings.TrimRight(NormalizeURL(opts.LocalURL), "/"),
		mode:         mode,
		localTimeout: timeout,
		httpClient:   hc,
		noCookies:    &noCookies,
		tokens:       opts.Tokens,
		limiter:      opts.Limiter,
	}
}

// BaseURL returns the normalized production base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Tokens returns the token store used for authenticated requests.
func (c *Client) Tokens() domain.TokenStore {
	return c.tokens
}

// AuthFetch sends r to url with JSON headers and, when a token is stored, a bearer
// Authorization header. Transport errors are returned as is.
func (c *Client) AuthFetch(ctx context.Context, url string, r Request) (*http.Response, error) {
	token := ""
	if c.tokens != nil {
		if t, ok := c.tokens.GetToken(ctx); ok {
			token = t
		}
	}
	return c.send(ctx, url, r, token)
}

// PublicFetch sends r to url with JSON headers and no Authorization header.
func (c *Client) PublicFetch(ctx context.Context, url string, r Request) (*http.Response, error) {
	return c.send(ctx, url, r, "")
}

// FetchWithFallback sends an authenticated request for endpoint, trying the local
// API first when the client runs in fallback mode.
func (c *Client) FetchWithFallback(ctx context.Context, endpoint string, r Request) (*http.Response, error) {
	return c.fallback(ctx, endpoint, r, c.AuthFetch)
}

// FetchPublicWithFallback is FetchWithFallback without the bearer token.
func (c *Client) FetchPublicWithFallback(ctx context.Context, endpoint string, r Request) (*http.Response, error) {
	return c.fallback(ctx, endpoint, r, c.PublicFetch)
}

// fallback runs the local attempt to completion (or timeout) before the production
// attempt starts. The production response is returned unfiltered.
func (c *Client) fallback(ctx context.Context, endpoint string, r Request, send sendFunc) (*http.Response, error) {
	if c.mode == ModeFallback && c.localURL != "" {
		if resp, ok := c.tryLocal(ctx, c.localURL+endpoint, r, send); ok {
			return resp, nil
		}
	}
	return c.production(ctx, c.baseURL+endpoint, r, send)
}

// tryLocal reports false on any transport error, timeout or non-2xx status.
// The body is read inside the timeout scope so the returned response does not
// depend on a cancelled context.
func (c *Client) tryLocal(ctx context.Context, url string, r Request, send sendFunc) (*http.Response, bool) {
	localCtx, cancel := context.WithTimeout(ctx, c.localTimeout)
	defer cancel()

	start := time.Now()
	resp, err := send(localCtx, url, r)
	if err != nil {
		logger.Outbound(ctx, "local", method(r), url, 0, time.Since(start), err)
		logger.WithContext(ctx).Debug().Str("url", url).Msg("Local API unavailable, using production")
		return nil, false
	}
	body := resp.Body
	defer body.Close()

	if !isOK(resp) {
		_, _ = io.Copy(io.Discard, body)
		logger.Outbound(ctx, "local", method(r), url, resp.StatusCode, time.Since(start), nil)
		logger.WithContext(ctx).Debug().Int("status", resp.StatusCode).Msg("Local API returned an error status, using production")
		return nil, false
	}

	data, err := io.ReadAll(body)
	if err != nil {
		logger.Outbound(ctx, "local", method(r), url, resp.StatusCode, time.Since(start), err)
		return nil, false
	}
	logger.Outbound(ctx, "local", method(r), url, resp.StatusCode, time.Since(start), nil)

	resp.Body = io.NopCloser(bytes.NewReader(data))
	return resp, true
}

func (c *Client) production(ctx context.Context, url string, r Request, send sendFunc) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("outbound rate limit: %w", err)
		}
	}

	start := time.Now()
	resp, err := send(ctx, url, r)
	if err != nil {
		logger.Outbound(ctx, "production", method(r), url, 0, time.Since(start), err)
		return nil, err
	}
	logger.Outbound(ctx, "production", method(r), url, resp.StatusCode, time.Since(start), nil)
	return resp, nil
}

func (c *Client) send(ctx context.Context, url string, r Request, token string) (*http.Response, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method(r), url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, values := range r.Header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	hc := c.noCookies
	if r.Credentials {
		hc = c.httpClient
	}
	return hc.Do(req)
}

func method(r Request) string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

func isOK(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
