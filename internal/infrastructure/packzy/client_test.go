package packzy

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hometex-storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLookups(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("Api-Key"))
		assert.Equal(t, "secret", r.Header.Get("Secret-Key"))
		_, _ = io.WriteString(w, `{"status":200,"delivery_status":"in_review"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/v1", "key", "secret")
	ctx := context.Background()

	st, err := c.StatusByConsignment(ctx, "1424107")
	require.NoError(t, err)
	assert.Equal(t, "in_review", st.Status)
	assert.Equal(t, "1424107", st.ConsignmentID)

	st, err = c.StatusByInvoice(ctx, "INV-9")
	require.NoError(t, err)
	assert.Equal(t, "INV-9", st.Invoice)

	st, err = c.StatusByTrackingCode(ctx, "15BAEB8A")
	require.NoError(t, err)
	assert.Equal(t, "15BAEB8A", st.TrackingCode)

	assert.Equal(t, []string{
		"/api/v1/status_by_cid/1424107",
		"/api/v1/status_by_invoice/INV-9",
		"/api/v1/status_by_trackingcode/15BAEB8A",
	}, paths)
}

func TestUnknownParcel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":400,"message":"Consignment not found"}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "key", "secret").StatusByInvoice(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrTrackingUnavailable)
}

func TestDisabledClient(t *testing.T) {
	c := NewClient("", "", "")
	assert.Nil(t, c)

	_, err := c.StatusByConsignment(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrTrackingUnavailable)
}
