package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMixedCurrency = errors.New("cart contains multiple currencies")

type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Line is one purchasable variant and its requested quantity. Product fields
// are a denormalized display snapshot; the upstream checkout revalidates
// price and availability.
type Line struct {
	VariantID     string   `json:"variant_id"`
	VariantTitle  string   `json:"variant_title"`
	ProductTitle  string   `json:"product_title"`
	ProductHandle string   `json:"product_handle"`
	ImageURL      string   `json:"image_url"`
	PriceAmount   string   `json:"price_amount"` // opaque decimal string from upstream
	CurrencyCode  string   `json:"currency_code"`
	Quantity      int      `json:"quantity"`
	Options       []Option `json:"options,omitempty"`
}

// Cart holds the visitor's intended purchase. At most one line exists per
// variant id; all quantities are >= 1.
type Cart struct {
	Lines []Line `json:"lines"`
}

// AddItem merges by variant id: an existing line gains the candidate's
// quantity, otherwise the line is appended. A non-positive candidate
// quantity counts as 1. Lines in a currency other than the cart's are
// rejected.
func (c *Cart) AddItem(l Line) error {
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	if cur := c.Currency(); cur != "" && l.CurrencyCode != "" && !strings.EqualFold(cur, l.CurrencyCode) {
		return ErrMixedCurrency
	}
	for i := range c.Lines {
		if c.Lines[i].VariantID == l.VariantID {
			c.Lines[i].Quantity += l.Quantity
			return nil
		}
	}
	c.Lines = append(c.Lines, l)
	return nil
}

// UpdateQuantity sets the quantity exactly; below 1 removes the line.
// Unknown variant ids are a no-op.
func (c *Cart) UpdateQuantity(variantID string, qty int) {
	if qty < 1 {
		c.RemoveItem(variantID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].VariantID == variantID {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

// RemoveItem drops the line if present.
func (c *Cart) RemoveItem(variantID string) {
	for i := range c.Lines {
		if c.Lines[i].VariantID == variantID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() { c.Lines = nil }

// Count is the sum of line quantities.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Subtotal sums unit price times quantity. Unparseable amounts contribute
// zero; the figure is display-grade, the upstream checkout owns the ledger.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		price, err := decimal.NewFromString(l.PriceAmount)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Currency is the single currency of the cart, empty when the cart is empty.
func (c *Cart) Currency() string {
	for _, l := range c.Lines {
		if l.CurrencyCode != "" {
			return l.CurrencyCode
		}
	}
	return ""
}
