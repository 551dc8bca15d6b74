package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/config"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

// Client talks to the Storefront GraphQL endpoint. It normalizes transport
// failures but performs no schema validation beyond struct decoding.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewClient(cfg config.ShopifyConfig) *Client {
	return &Client{
		endpoint: fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.StoreDomain, cfg.APIVersion),
		token:    cfg.Token,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

// NewClientWithEndpoint is for tests pointing at a local server.
func NewClientWithEndpoint(endpoint, token string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, token: token, http: hc}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// do posts one GraphQL document and decodes the data object into out.
func (c *Client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	if variables == nil {
		variables = map[string]any{}
	}
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.UnavailableErr("Storefront API unreachable.", err)
	}
	defer resp.Body.Close()

	// 402 signals an inactive billing plan on the store account. It is an
	// operator problem, not a request problem, so it gets its own kind.
	if resp.StatusCode == http.StatusPaymentRequired {
		return apperr.PaymentRequiredErr(
			"Storefront API access requires an active billing plan. Upgrade the store at https://admin.shopify.com.",
			fmt.Errorf("storefront returned 402"),
		)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperr.UnavailableErr("Storefront API error.", fmt.Errorf("storefront http status %d", resp.StatusCode))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode storefront response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			msgs[i] = e.Message
		}
		return fmt.Errorf("storefront graphql: %s", strings.Join(msgs, ", "))
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode storefront data: %w", err)
		}
	}
	return nil
}

// Products lists products. full selects the heavy shape (all media/variants);
// otherwise the one-variant summary used by listing pages.
func (c *Client) Products(ctx context.Context, first int, query string, full bool) ([]Product, error) {
	doc := productsSummaryQuery
	if full {
		doc = productsQuery
	}
	vars := map[string]any{"first": first}
	if query != "" {
		vars["query"] = query
	}
	var data struct {
		Products connection[Product] `json:"products"`
	}
	if err := c.do(ctx, doc, vars, &data); err != nil {
		return nil, err
	}
	return data.Products.Nodes(), nil
}

func (c *Client) Collections(ctx context.Context, first int) ([]Collection, error) {
	var data struct {
		Collections connection[Collection] `json:"collections"`
	}
	if err := c.do(ctx, collectionsQuery, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}
	return data.Collections.Nodes(), nil
}

// ProductsByCollection returns nil when the collection handle is unknown.
func (c *Client) ProductsByCollection(ctx context.Context, handle string, first int) (*Collection, error) {
	var data struct {
		Collection *Collection `json:"collection"`
	}
	if err := c.do(ctx, productsByCollectionQuery, map[string]any{"handle": handle, "first": first}, &data); err != nil {
		return nil, err
	}
	return data.Collection, nil
}

// ProductByHandle returns nil when no product has the handle.
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*Product, error) {
	var data struct {
		ProductByHandle *Product `json:"productByHandle"`
	}
	if err := c.do(ctx, productByHandleQuery, map[string]any{"handle": handle}, &data); err != nil {
		return nil, err
	}
	return data.ProductByHandle, nil
}

// CartCreate submits the line items and returns the hosted checkout session.
// The returned URL carries the online_store sales channel parameter.
func (c *Client) CartCreate(ctx context.Context, lines []CheckoutLine) (CheckoutSession, error) {
	var data cartCreateData
	vars := map[string]any{"input": map[string]any{"lines": lines}}
	if err := c.do(ctx, cartCreateMutation, vars, &data); err != nil {
		return CheckoutSession{}, err
	}

	if ue := data.CartCreate.UserErrors; len(ue) > 0 {
		msgs := make([]string, len(ue))
		for i, e := range ue {
			msgs[i] = e.Message
		}
		return CheckoutSession{}, fmt.Errorf("cart creation failed: %s", strings.Join(msgs, ", "))
	}

	cart := data.CartCreate.Cart
	if cart == nil || cart.CheckoutURL == "" {
		return CheckoutSession{}, fmt.Errorf("no checkout URL returned")
	}

	u, err := url.Parse(cart.CheckoutURL)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("invalid checkout URL %q: %w", cart.CheckoutURL, err)
	}
	q := u.Query()
	q.Set("channel", "online_store")
	u.RawQuery = q.Encode()

	return CheckoutSession{
		CheckoutURL:   u.String(),
		TotalQuantity: cart.TotalQuantity,
		Total:         cart.Cost.TotalAmount,
	}, nil
}
