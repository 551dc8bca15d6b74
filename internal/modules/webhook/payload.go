package webhook

import "encoding/json"

// OrderPayload is the subset of Shopify's orders/create webhook body this
// system reads. Numeric ids arrive as JSON numbers; they are stored as
// strings.
type OrderPayload struct {
	ID                json.Number     `json:"id"`
	OrderNumber       json.Number     `json:"order_number"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	FulfillmentStatus string          `json:"fulfillment_status"`
	FinancialStatus   string          `json:"financial_status"`
	TotalPrice        string          `json:"total_price"`
	SubtotalPrice     string          `json:"subtotal_price"`
	TotalTax          string          `json:"total_tax"`
	TotalShipping     moneySet        `json:"total_shipping_price_set"`
	Currency          string          `json:"currency"`
	Customer          *customerInfo   `json:"customer"`
	LineItems         []LineItem      `json:"line_items"`
	ShippingAddress   json.RawMessage `json:"shipping_address"`
	BillingAddress    json.RawMessage `json:"billing_address"`
}

type moneySet struct {
	ShopMoney struct {
		Amount string `json:"amount"`
	} `json:"shop_money"`
}

type customerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LineItem struct {
	ProductID    json.Number `json:"product_id"`
	VariantID    json.Number `json:"variant_id"`
	Title        string      `json:"title"`
	VariantTitle string      `json:"variant_title"`
	Quantity     int         `json:"quantity"`
	Price        string      `json:"price"`
	Image        *struct {
		Src string `json:"src"`
	} `json:"image"`
}

// OrderNumberOrName prefers the numeric order_number and falls back to the
// display name.
func (p OrderPayload) OrderNumberOrName() string {
	if p.OrderNumber.String() != "" && p.OrderNumber.String() != "0" {
		return p.OrderNumber.String()
	}
	return p.Name
}

// CustomerName joins first and last name, empty when no customer block.
func (p OrderPayload) CustomerName() string {
	if p.Customer == nil || p.Customer.FirstName == "" {
		return ""
	}
	name := p.Customer.FirstName
	if p.Customer.LastName != "" {
		name += " " + p.Customer.LastName
	}
	return name
}
