package shopify

// Shapes mirror the subset of the Storefront API schema the queries in
// queries.go select. Amounts stay strings end to end; parsing to decimal is
// the caller's concern.

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type Image struct {
	URL string `json:"url"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Variant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Price            Money            `json:"price"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
}

type MediaSource struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Format   string `json:"format"`
}

type Media struct {
	MediaContentType string        `json:"mediaContentType"`
	PreviewImage     *Image        `json:"previewImage"`
	Image            *Image        `json:"image"`
	Sources          []MediaSource `json:"sources"`
	EmbeddedURL      string        `json:"embeddedUrl"`
}

type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Product struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Handle           string `json:"handle"`
	AvailableForSale bool   `json:"availableForSale"`
	PriceRange       struct {
		MinVariantPrice Money `json:"minVariantPrice"`
	} `json:"priceRange"`
	Media    connection[Media]   `json:"media"`
	Variants connection[Variant] `json:"variants"`
	Options  []ProductOption     `json:"options"`
}

type Collection struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Handle      string              `json:"handle"`
	Description string              `json:"description"`
	Image       *Image              `json:"image"`
	Products    connection[Product] `json:"products"`
}

// connection flattens the edges/node pagination wrapper.
type connection[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
}

func (c connection[T]) Nodes() []T {
	out := make([]T, len(c.Edges))
	for i, e := range c.Edges {
		out[i] = e.Node
	}
	return out
}

// CheckoutLine is one cartCreate input line.
type CheckoutLine struct {
	Quantity      int    `json:"quantity"`
	MerchandiseID string `json:"merchandiseId"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type cartCreateData struct {
	CartCreate struct {
		Cart *struct {
			ID            string `json:"id"`
			CheckoutURL   string `json:"checkoutUrl"`
			TotalQuantity int    `json:"totalQuantity"`
			Cost          struct {
				TotalAmount Money `json:"totalAmount"`
			} `json:"cost"`
		} `json:"cart"`
		UserErrors []userError `json:"userErrors"`
	} `json:"cartCreate"`
}

// CheckoutSession is the ephemeral result of a cartCreate call.
type CheckoutSession struct {
	CheckoutURL   string
	TotalQuantity int
	Total         Money
}
