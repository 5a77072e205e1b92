package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/infrastructure/state"
	"hometex-storefront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistToggle(t *testing.T) {
	ctx, _, tokens := visitor(t)
	u := NewWishlistUsecase(&fakeWishlistRemote{}, tokens)
	u.now = fixedClock()

	added, err := u.Toggle(ctx, towel)
	require.NoError(t, err)
	assert.True(t, added)

	in, err := u.Contains(ctx, towel.ID)
	require.NoError(t, err)
	assert.True(t, in)

	added, err = u.Toggle(ctx, towel)
	require.NoError(t, err)
	assert.False(t, added)

	items, err := u.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWishlistNewestFirst(t *testing.T) {
	ctx, _, tokens := visitor(t)
	u := NewWishlistUsecase(&fakeWishlistRemote{}, tokens)
	u.now = fixedClock()

	for _, id := range []string{"1", "2", "3"} {
		_, err := u.Toggle(ctx, domain.ProductRef{ID: id})
		require.NoError(t, err)
	}
	items, err := u.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "3", items[0].Product.ID)
	assert.Greater(t, items[0].AddedAt, items[2].AddedAt)

	_, err = u.Remove(ctx, "9")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestWishlistSignedInRemoteFailure(t *testing.T) {
	ctx, _, tokens := visitor(t)
	signIn(t, ctx, tokens)
	remote := &fakeWishlistRemote{fail: true}
	u := NewWishlistUsecase(remote, tokens)

	_, err := u.Toggle(ctx, towel)
	assert.ErrorIs(t, err, errRemote)

	in, err := u.Contains(ctx, towel.ID)
	require.NoError(t, err)
	assert.False(t, in)
	assert.Equal(t, []string{"add 7"}, remote.calls)
}

func TestWishlistRefreshDedupes(t *testing.T) {
	ctx, _, tokens := visitor(t)
	signIn(t, ctx, tokens)
	remote := &fakeWishlistRemote{items: []domain.RemoteWishlistItem{
		{ID: "w1", ProductID: "1", Name: "Quilt"},
		{ID: "w2", ProductID: "1", Name: "Quilt"},
		{ID: "w3", ProductID: "2", Name: "Sheet"},
	}}
	items, err := NewWishlistUsecase(remote, tokens).Refresh(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestRecentlyViewedDedupesAndCaps(t *testing.T) {
	ctx, _, _ := visitor(t)
	u := NewRecentlyViewedUsecase()
	u.now = fixedClock()

	for i := 1; i <= 12; i++ {
		_, err := u.Record(ctx, domain.Product{ID: fmt.Sprint(i), Name: fmt.Sprintf("P%d", i)})
		require.NoError(t, err)
	}
	views, err := u.Record(ctx, domain.Product{ID: "5", Name: "P5"})
	require.NoError(t, err)

	require.Len(t, views, domain.RecentlyViewedLimit)
	assert.Equal(t, "5", views[0].ID)
	assert.Equal(t, "12", views[1].ID)

	seen := map[string]bool{}
	for _, v := range views {
		assert.False(t, seen[v.ID], "duplicate %s", v.ID)
		seen[v.ID] = true
	}
	assert.False(t, seen["1"])

	listed, err := u.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, views, listed)

	require.NoError(t, u.Clear(ctx))
	listed, err = u.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

// browser returns a context whose state lives in cookies written to rec.
func browser(t *testing.T) (context.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	store := state.NewCookieStore(rec, httptest.NewRequest(http.MethodGet, "/", nil), state.CookieOptions{})
	return session.NewContext(context.Background(), store), rec
}

func catalogProduct(i int, name string) domain.Product {
	original := 3250.0
	return domain.Product{
		ID:            fmt.Sprint(1000 + i),
		Name:          name,
		Image:         fmt.Sprintf("https://hometexbd.ltd/storage/products/2026/01/premium-cotton-bedsheet-%d-large.webp", i),
		Category:      "Bed Sheets",
		Subcategory:   "King Size Bed Sheets",
		Price:         2450,
		OriginalPrice: &original,
	}
}

func assertCookiesFit(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	for _, header := range rec.Header().Values("Set-Cookie") {
		assert.LessOrEqual(t, len(header), 4096)
	}
}

func TestRecentlyViewedFitsInCookie(t *testing.T) {
	ctx, rec := browser(t)
	u := NewRecentlyViewedUsecase()
	u.now = fixedClock()

	var views []domain.RecentView
	for i := 1; i <= domain.RecentlyViewedLimit; i++ {
		var err error
		views, err = u.Record(ctx, catalogProduct(i, fmt.Sprintf("Printed Cotton Bed Sheet Set, King %d", i)))
		require.NoError(t, err)
	}
	assert.Len(t, views, domain.RecentlyViewedLimit)
	assertCookiesFit(t, rec)

	listed, err := u.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, views, listed)
}

func TestRecentlyViewedDropsOldestWhenCookieIsFull(t *testing.T) {
	ctx, rec := browser(t)
	u := NewRecentlyViewedUsecase()
	u.now = fixedClock()

	long := strings.Repeat("Jacquard Weave ", 40)
	var views []domain.RecentView
	for i := 1; i <= domain.RecentlyViewedLimit; i++ {
		var err error
		views, err = u.Record(ctx, catalogProduct(i, long))
		require.NoError(t, err)
	}
	require.NotEmpty(t, views)
	assert.Less(t, len(views), domain.RecentlyViewedLimit)
	assert.Equal(t, "1010", views[0].ID)
	assertCookiesFit(t, rec)
}

func TestCartRejectsLinesBeyondCookieSize(t *testing.T) {
	ctx, rec := browser(t)
	u := NewCartUsecase(&fakeCartRemote{}, session.NewTokens(nil), 10)

	var err error
	lines := 0
	for i := 1; i <= 50 && err == nil; i++ {
		_, err = u.Add(ctx, catalogProduct(i, "Hometex Premium Cotton Printed Bed Sheet Set with Pillow Covers").Ref(), 1, "Blue", "King")
		if err == nil {
			lines++
		}
	}
	require.ErrorIs(t, err, domain.ErrStateTooLarge)
	assert.Greater(t, lines, 5)
	assertCookiesFit(t, rec)

	items, err := u.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, lines, "the last cart that fit is kept")
}

func TestRecentlyViewedIgnoresCorruptState(t *testing.T) {
	ctx, store, _ := visitor(t)
	require.NoError(t, store.Set(domain.RecentlyViewedKey, "{not json", 0))

	views, err := NewRecentlyViewedUsecase().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
}

type fakeOfferRemote struct {
	got  *domain.Offer
	fail bool
}

func (f *fakeOfferRemote) SubmitOffer(ctx context.Context, offer domain.Offer) (*domain.Response[domain.Offer], error) {
	if f.fail {
		return nil, errRemote
	}
	f.got = &offer
	return &domain.Response[domain.Offer]{Success: true, Data: &offer}, nil
}

func TestOfferSubmitMarksProduct(t *testing.T) {
	ctx, _, _ := visitor(t)
	remote := &fakeOfferRemote{}
	u := NewOfferUsecase(remote)

	status, err := u.Status(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusNone, status)

	offer, err := u.Submit(ctx, domain.Offer{ProductID: "7", Price: 400, Quantity: 10, Message: "bulk"})
	require.NoError(t, err)
	assert.NotEmpty(t, offer.Reference)
	assert.Equal(t, offer.Reference, remote.got.Reference)

	status, err = u.Status(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusSubmitted, status)
}

func TestOfferFailureIsNotMarked(t *testing.T) {
	ctx, _, _ := visitor(t)
	u := NewOfferUsecase(&fakeOfferRemote{fail: true})

	_, err := u.Submit(ctx, domain.Offer{ProductID: "7", Price: 400, Quantity: 1})
	assert.ErrorIs(t, err, errRemote)

	_, err = u.Submit(ctx, domain.Offer{ProductID: "7", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	status, err := u.Status(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusNone, status)
}

type fakeGeocoder struct {
	info *domain.LocationInfo
	err  error
}

func (f fakeGeocoder) Reverse(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	info := *f.info
	info.Latitude, info.Longitude = lat, lon
	return &info, nil
}

func TestLocationDetectAndSave(t *testing.T) {
	ctx, _, _ := visitor(t)
	u := NewLocationUsecase(fakeGeocoder{info: &domain.LocationInfo{DisplayName: "Mirpur, Dhaka", City: "Dhaka"}})

	current, err := u.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	info, err := u.Detect(ctx, 23.8, 90.36)
	require.NoError(t, err)
	assert.Equal(t, 23.8, info.Latitude)

	edited := *info
	edited.City = "Mirpur"
	edited.Postcode = ""
	require.NoError(t, u.Save(ctx, edited))

	current, err = u.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, edited, *current)
}

func TestLocationDetectFailureKeepsSaved(t *testing.T) {
	ctx, _, _ := visitor(t)
	u := NewLocationUsecase(fakeGeocoder{err: domain.ErrLocationNotFound})
	require.NoError(t, u.Save(ctx, domain.LocationInfo{City: "Sylhet"}))

	_, err := u.Detect(ctx, 0, 0)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)

	current, err := u.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sylhet", current.City)
}
