package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/store/catalog"
	"storefront/pkg/store/domain/model"
	"storefront/pkg/store/domain/service"
	"storefront/pkg/store/infrastructure/kv"
	"storefront/pkg/store/localization"
)

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(service.Event) error { return nil }

type zeroSampler struct{}

func (zeroSampler) Float64() float64 { return 0 }

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat := catalog.Default()
	dispatcher := nopDispatcher{}

	router := Router(
		cat,
		service.NewCartService(dispatcher),
		service.NewWishlistService(dispatcher),
		service.NewRatingService(cat.All(), kv.NewMemory(), zeroSampler{}, dispatcher),
		service.NewSessionService(dispatcher),
		service.NewCompareService(3, dispatcher),
		service.NewBundleService(dispatcher),
		service.NewCheckoutService(dispatcher),
		localization.New(),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestListProducts(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []model.Product
	decode(t, resp, &products)
	assert.Len(t, products, 6)
}

func TestGetUnknownProduct(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/products/no-such-product", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartFlow(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/cart/items", `{"productId":"iphone-13"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart struct {
		Items     []model.CartItem `json:"items"`
		Subtotal  int64            `json:"subtotal"`
		ItemCount int              `json:"itemCount"`
	}
	decode(t, resp, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(650000), cart.Subtotal)

	resp = do(t, http.MethodPut, srv.URL+"/api/v1/cart/items/iphone-13", `{"quantity":3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &cart)
	assert.Equal(t, 3, cart.ItemCount)
	assert.Equal(t, int64(3*650000), cart.Subtotal)

	resp = do(t, http.MethodDelete, srv.URL+"/api/v1/cart/items/iphone-13", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &cart)
	assert.Zero(t, cart.ItemCount)
}

func TestCheckoutFlow(t *testing.T) {
	srv := setupServer(t)

	t.Run("empty cart is rejected", func(t *testing.T) {
		resp := do(t, http.MethodPost, srv.URL+"/api/v1/checkout", "")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/session", `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/cart/items", `{"productId":"jbl-charge-5"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/checkout", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order model.Order
	decode(t, resp, &order)
	assert.Equal(t, int64(85000), order.Subtotal)

	t.Run("cart is cleared after checkout", func(t *testing.T) {
		resp := do(t, http.MethodGet, srv.URL+"/api/v1/cart", "")
		var cart struct {
			ItemCount int `json:"itemCount"`
		}
		decode(t, resp, &cart)
		assert.Zero(t, cart.ItemCount)
	})

	t.Run("order lands in the history", func(t *testing.T) {
		resp := do(t, http.MethodGet, srv.URL+"/api/v1/orders", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var orders []model.Order
		decode(t, resp, &orders)
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)
	})
}

func TestRatingEndpoints(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/products/iphone-13/rating", `{"rating":9}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/products/iphone-13/rating", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rated struct {
		Rating    model.RatingInfo `json:"rating"`
		UserRated bool             `json:"userRated"`
	}
	decode(t, resp, &rated)
	// iphone-13 has 210 recorded sales, so 14 seeded reviews
	assert.Equal(t, 14, rated.Rating.Count)
	assert.False(t, rated.UserRated)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/products/iphone-13/rating", `{"rating":4}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &rated)
	assert.Equal(t, 15, rated.Rating.Count)
	assert.True(t, rated.UserRated)
}

func TestBundleEndpoints(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/bundle/foundation", `{"productId":"apple-20w-adapter"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/bundle/foundation", `{"productId":"iphone-15-pro-max"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/bundle/accessories/apple-20w-adapter", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bundle struct {
		Step  service.BundleStep   `json:"step"`
		Quote *service.BundleQuote `json:"quote"`
	}
	decode(t, resp, &bundle)
	require.NotNil(t, bundle.Quote)
	assert.Equal(t, service.StepChooseAccessories, bundle.Step)
	assert.Equal(t, int64(1575000), bundle.Quote.Subtotal)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/bundle/commit", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart struct {
		ItemCount int   `json:"itemCount"`
		Subtotal  int64 `json:"subtotal"`
	}
	decode(t, resp, &cart)
	assert.Equal(t, 2, cart.ItemCount)
	assert.Equal(t, int64(1575000), cart.Subtotal)
}

func TestLocalizationEndpoint(t *testing.T) {
	srv := setupServer(t)

	resp := do(t, http.MethodPut, srv.URL+"/api/v1/localization", `{"locale":"de-DE","currency":"EUR"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodPut, srv.URL+"/api/v1/localization", `{"currency":"GBP"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
