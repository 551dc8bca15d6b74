package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithEndpoint(srv.URL, "test-token", srv.Client())
}

func TestDoSendsAccessTokenHeader(t *testing.T) {
	var gotToken string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Storefront-Access-Token")
		_, _ = w.Write([]byte(`{"data":{"products":{"edges":[]}}}`))
	})

	_, err := c.Products(context.Background(), 10, "", true)
	require.NoError(t, err)
	assert.Equal(t, "test-token", gotToken)
}

func TestDoMapsPaymentRequired(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})

	_, err := c.Products(context.Background(), 10, "", true)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.PaymentRequired, ae.Kind)
}

func TestDoMapsServerErrorToUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Collections(context.Background(), 10)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Unavailable, ae.Kind)
}

func TestDoJoinsGraphQLErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"first problem"},{"message":"second problem"}]}`))
	})

	_, err := c.Collections(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first problem, second problem")
}

func TestProductByHandleReturnsNilWhenMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"productByHandle":null}}`))
	})

	p, err := c.ProductByHandle(context.Background(), "no-such-product")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductsOmitsQueryVariableWhenEmpty(t *testing.T) {
	var gotVars map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]any `json:"variables"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotVars = req.Variables
		_, _ = w.Write([]byte(`{"data":{"products":{"edges":[]}}}`))
	})

	_, err := c.Products(context.Background(), 5, "", false)
	require.NoError(t, err)
	assert.Contains(t, gotVars, "first")
	assert.NotContains(t, gotVars, "query")
}

func TestCartCreateAppendsChannelParam(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"cartCreate":{"cart":{
			"id":"gid://shopify/Cart/1",
			"checkoutUrl":"https://shop.example.com/checkouts/abc?key=xyz",
			"totalQuantity":3,
			"cost":{"totalAmount":{"amount":"74.97","currencyCode":"USD"}}
		},"userErrors":[]}}}`))
	})

	sess, err := c.CartCreate(context.Background(), []CheckoutLine{
		{Quantity: 3, MerchandiseID: "gid://shopify/ProductVariant/1"},
	})
	require.NoError(t, err)
	assert.Contains(t, sess.CheckoutURL, "channel=online_store")
	assert.Contains(t, sess.CheckoutURL, "key=xyz")
	assert.Equal(t, 3, sess.TotalQuantity)
	assert.Equal(t, "74.97", sess.Total.Amount)
}

func TestCartCreateJoinsUserErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"cartCreate":{"cart":null,"userErrors":[
			{"field":["input"],"message":"variant is sold out"}
		]}}}`))
	})

	_, err := c.CartCreate(context.Background(), []CheckoutLine{{Quantity: 1, MerchandiseID: "gid://x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variant is sold out")
}

func TestCartCreateRequiresCheckoutURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"cartCreate":{"cart":{"id":"gid://shopify/Cart/1","checkoutUrl":""},"userErrors":[]}}}`))
	})

	_, err := c.CartCreate(context.Background(), []CheckoutLine{{Quantity: 1, MerchandiseID: "gid://x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no checkout URL")
}
