package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type staticTokens struct {
	mu    sync.Mutex
	token string
}

func (s *staticTokens) GetToken(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *staticTokens) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *staticTokens) ClearToken(ctx context.Context) error {
	return s.SetToken(ctx, "")
}

// countingServer answers every request with status and body and counts hits.
func countingServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// hangingServer never answers until the client goes away.
func hangingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(10 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFallbackWaitsForLocalTimeout(t *testing.T) {
	local := hangingServer(t)
	prod, prodHits := countingServer(t, http.StatusOK, `{"success":true,"data":{}}`)

	c := New(Options{BaseURL: prod.URL, LocalURL: local.URL, Mode: ModeFallback})

	start := time.Now()
	resp, err := c.FetchWithFallback(context.Background(), "/products-web", Get())
	elapsed := time.Since(start)
	require.NoError(t, err)

	got, err := HandleResponse[map[string]any](resp)
	require.NoError(t, err)
	assert.Equal(t, true, (*got)["success"])
	assert.Equal(t, int32(1), atomic.LoadInt32(prodHits))
	assert.GreaterOrEqual(t, elapsed, DefaultLocalTimeout-50*time.Millisecond)
}

func TestFallbackShortCircuitsOnLocalSuccess(t *testing.T) {
	local, localHits := countingServer(t, http.StatusOK, `{"success":true,"data":{"id":7}}`)
	prod, prodHits := countingServer(t, http.StatusOK, `{"success":true}`)

	c := New(Options{BaseURL: prod.URL, LocalURL: local.URL, Mode: ModeFallback})

	resp, err := c.FetchPublicWithFallback(context.Background(), "/products-details-web/7", Get())
	require.NoError(t, err)

	got, err := HandleResponse[envelope](resp)
	require.NoError(t, err)
	require.NotNil(t, got.Data)
	assert.Equal(t, 7, got.Data.ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(localHits))
	assert.Equal(t, int32(0), atomic.LoadInt32(prodHits))
}

func TestFallbackOnLocalErrorStatus(t *testing.T) {
	local, localHits := countingServer(t, http.StatusNotFound, `{"message":"route missing"}`)
	prod, prodHits := countingServer(t, http.StatusOK, `{"success":true,"data":{"id":3}}`)

	c := New(Options{BaseURL: prod.URL, LocalURL: local.URL, Mode: ModeFallback, LocalTimeout: 500 * time.Millisecond})

	got, err := Do[envelope](context.Background(), c, "/x", Get(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Data.ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(localHits))
	assert.Equal(t, int32(1), atomic.LoadInt32(prodHits))
}

func TestFallbackOnLocalConnectionRefused(t *testing.T) {
	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()
	prod, prodHits := countingServer(t, http.StatusOK, `{"success":true}`)

	c := New(Options{BaseURL: prod.URL, LocalURL: closedURL, Mode: ModeFallback})

	resp, err := c.FetchWithFallback(context.Background(), "/cart", Get())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, int32(1), atomic.LoadInt32(prodHits))
}

func TestProductionErrorsAreNotFiltered(t *testing.T) {
	local, _ := countingServer(t, http.StatusInternalServerError, `{}`)
	prod, _ := countingServer(t, http.StatusUnauthorized, `{"message":"Unauthenticated."}`)

	c := New(Options{BaseURL: prod.URL, LocalURL: local.URL, Mode: ModeFallback})

	_, err := Do[envelope](context.Background(), c, "/cart", Get(), true)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, "Unauthenticated.", err.Error())
}

func TestProductionTransportErrorPropagates(t *testing.T) {
	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	c := New(Options{BaseURL: closedURL, Mode: ModeDirect})

	_, err := c.FetchWithFallback(context.Background(), "/cart", Get())
	require.Error(t, err)
	_, isAPI := AsAPIError(err)
	assert.False(t, isAPI)
}

func TestDirectModeSkipsLocal(t *testing.T) {
	local, localHits := countingServer(t, http.StatusOK, `{}`)
	prod, prodHits := countingServer(t, http.StatusOK, `{}`)

	c := New(Options{BaseURL: prod.URL, LocalURL: local.URL, Mode: ModeDirect})

	resp, err := c.FetchWithFallback(context.Background(), "/orders", Get())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, int32(0), atomic.LoadInt32(localHits))
	assert.Equal(t, int32(1), atomic.LoadInt32(prodHits))
}

func TestRequestBodyIsReplayedToProduction(t *testing.T) {
	var bodies []string
	var mu sync.Mutex
	record := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			mu.Lock()
			bodies = append(bodies, string(b))
			mu.Unlock()
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"success":true}`)
		}
	}
	local := httptest.NewServer(record(http.StatusServiceUnavailable))
	defer local.Close()
	prod := httptest.NewServer(record(http.StatusOK))
	defer prod.Close()

	c := New(Options{BaseURL: prod.URL, LocalURL: local.URL, Mode: ModeFallback})

	_, err := Send[map[string]any](context.Background(), c, http.MethodPost, "/cart/add", map[string]any{"product_id": "9"}, true)
	require.NoError(t, err)
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
	assert.JSONEq(t, `{"product_id":"9"}`, bodies[1])
}

func TestAuthFetchHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tokens := &staticTokens{token: "abc123"}
	c := New(Options{BaseURL: srv.URL, Tokens: tokens})

	header := make(http.Header)
	header.Set("Accept", "text/plain")
	header.Set("X-Client", "storefront")
	resp, err := c.AuthFetch(context.Background(), srv.URL+"/me", Request{Method: http.MethodGet, Header: header})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "text/plain", got.Get("Accept"), "caller headers override defaults")
	assert.Equal(t, "storefront", got.Get("X-Client"))
	assert.Equal(t, "Bearer abc123", got.Get("Authorization"))

	require.NoError(t, tokens.ClearToken(context.Background()))
	resp, err = c.AuthFetch(context.Background(), srv.URL+"/me", Get())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, got.Get("Authorization"))
}

func TestPublicFetchNeverSendsToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Tokens: &staticTokens{token: "secret"}})
	resp, err := c.FetchPublicWithFallback(context.Background(), "/products-web", Get())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, auth)
}

func TestCredentialsControlCookies(t *testing.T) {
	var cookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie = r.Header.Get("Cookie")
	}))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	u, _ := url.Parse(srv.URL)
	jar.SetCookies(u, []*http.Cookie{{Name: "laravel_session", Value: "s1"}})

	c := New(Options{BaseURL: srv.URL, HTTPClient: &http.Client{Jar: jar}})

	resp, err := c.PublicFetch(context.Background(), srv.URL+"/x", Get())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, cookie)

	resp, err = c.PublicFetch(context.Background(), srv.URL+"/x", Request{Credentials: true})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "laravel_session=s1", cookie)
}

func TestBaseURLIsNormalized(t *testing.T) {
	c := New(Options{BaseURL: "//api.hometex.test/api/"})
	assert.Equal(t, "http://api.hometex.test/api", c.BaseURL())
}

func TestLimiterCancelledContext(t *testing.T) {
	prod, prodHits := countingServer(t, http.StatusOK, `{}`)
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	c := New(Options{BaseURL: prod.URL, Limiter: limiter})

	resp, err := c.FetchPublicWithFallback(context.Background(), "/a", Get())
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.FetchPublicWithFallback(ctx, "/a", Get())
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(prodHits))
}
