package state

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"hometex-storefront/internal/domain"
)

// MaxCookieBytes bounds name plus encoded value. Browsers drop cookies whose
// name, value and attributes exceed 4096 bytes.
const MaxCookieBytes = 4000

type CookieOptions struct {
	Domain string
	Path   string
	Secure bool
}

// CookieStore keeps client state in browser cookies. Writes made during a request
// are visible to later reads of the same request.
type CookieStore struct {
	r    *http.Request
	w    http.ResponseWriter
	opts CookieOptions
	now  func() time.Time

	mu      sync.Mutex
	pending map[string]*string // nil value marks a deleted key
}

func NewCookieStore(w http.ResponseWriter, r *http.Request, opts CookieOptions) *CookieStore {
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &CookieStore{
		r:       r,
		w:       w,
		opts:    opts,
		now:     time.Now,
		pending: make(map[string]*string),
	}
}

func (c *CookieStore) Get(key string) (string, bool) {
	c.mu.Lock()
	v, written := c.pending[key]
	c.mu.Unlock()
	if written {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set fails with domain.ErrStateTooLarge, writing nothing, when the encoded
// cookie would not fit in MaxCookieBytes.
func (c *CookieStore) Set(key, value string, ttl time.Duration) error {
	encoded := url.QueryEscape(value)
	if size := len(key) + 1 + len(encoded); size > MaxCookieBytes {
		return fmt.Errorf("%w: %s is %d bytes", domain.ErrStateTooLarge, key, size)
	}
	cookie := c.cookie(key, encoded)
	if ttl > 0 {
		cookie.Expires = c.now().Add(ttl)
		cookie.MaxAge = int(ttl.Seconds())
	}
	http.SetCookie(c.w, cookie)

	c.mu.Lock()
	c.pending[key] = &value
	c.mu.Unlock()
	return nil
}

func (c *CookieStore) Delete(key string) error {
	cookie := c.cookie(key, "")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(c.w, cookie)

	c.mu.Lock()
	c.pending[key] = nil
	c.mu.Unlock()
	return nil
}

func (c *CookieStore) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     c.opts.Path,
		Domain:   c.opts.Domain,
		Secure:   c.opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
