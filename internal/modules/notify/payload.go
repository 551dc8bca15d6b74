package notify

import "github.com/shopspring/decimal"

const (
	TypeConfirmation = "confirmation"
	TypeShipped      = "shipped"
	TypeDelivered    = "delivered"
)

type Item struct {
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type ShippingAddress struct {
	Address1 string `json:"address1,omitempty"`
	City     string `json:"city,omitempty"`
	Province string `json:"province,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Payload is the discriminated request the dispatcher accepts. Type selects
// one of the three templates.
type Payload struct {
	Type            string           `json:"type" binding:"required,oneof=confirmation shipped delivered"`
	Email           string           `json:"email" binding:"required,email"`
	CustomerName    string           `json:"customerName"`
	OrderNumber     string           `json:"orderNumber" binding:"required"`
	Items           []Item           `json:"items"`
	TotalPrice      decimal.Decimal  `json:"totalPrice"`
	CurrencyCode    string           `json:"currencyCode"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	TrackingURL     string           `json:"trackingUrl,omitempty"`
}
