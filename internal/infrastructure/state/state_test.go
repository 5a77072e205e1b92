package state

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hometex-storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("a", "1", 0))
	require.NoError(t, s.Set("b", "2", 20*time.Millisecond))

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	time.Sleep(40 * time.Millisecond)
	_, ok = s.Get("b")
	assert.False(t, ok, "expired keys are not returned")

	require.NoError(t, s.Delete("a"))
	_, ok = s.Get("a")
	assert.False(t, ok)
}

func TestCookieStoreRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s := NewCookieStore(rec, req, CookieOptions{Domain: "hometex.test", Secure: true})

	value := `[{"id":"1","name":"Bed Sheet, King"}]`
	require.NoError(t, s.Set("recentlyViewed", value, 30*24*time.Hour))

	got, ok := s.Get("recentlyViewed")
	require.True(t, ok)
	assert.Equal(t, value, got, "writes are visible within the request")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "recentlyViewed", c.Name)
	assert.Equal(t, 30*24*3600, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, "/", c.Path)

	// Next request carries the cookie back.
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	s2 := NewCookieStore(httptest.NewRecorder(), next, CookieOptions{})
	got, ok = s2.Get("recentlyViewed")
	require.True(t, ok)
	assert.Equal(t, value, got)
}

func TestCookieStoreDelete(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "hometex-auth-token", Value: "tok"})
	rec := httptest.NewRecorder()
	s := NewCookieStore(rec, req, CookieOptions{})

	v, ok := s.Get("hometex-auth-token")
	require.True(t, ok)
	assert.Equal(t, "tok", v)

	require.NoError(t, s.Delete("hometex-auth-token"))
	_, ok = s.Get("hometex-auth-token")
	assert.False(t, ok)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestCookieStoreRejectsOversizedValue(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "cart", Value: "%5B%5D"})
	s := NewCookieStore(rec, req, CookieOptions{})

	// Quotes triple in size once escaped.
	value := `["` + strings.Repeat(`a","`, 700) + `"]`
	err := s.Set("cart", value, time.Hour)
	assert.ErrorIs(t, err, domain.ErrStateTooLarge)
	assert.Empty(t, rec.Result().Cookies(), "nothing is written")

	got, ok := s.Get("cart")
	require.True(t, ok)
	assert.Equal(t, "[]", got, "the previous value stays readable")

	require.NoError(t, s.Set("cart", strings.Repeat("a", MaxCookieBytes-len("cart=")), time.Hour))
}
