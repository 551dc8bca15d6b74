package notify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmationPayload() Payload {
	return Payload{
		Type:         TypeConfirmation,
		Email:        "jane@example.com",
		CustomerName: "Jane Doe",
		OrderNumber:  "1042",
		Items: []Item{
			{Title: "Sample Tee", Quantity: 2, Price: decimal.RequireFromString("24.99")},
		},
		TotalPrice:   decimal.RequireFromString("59.98"),
		CurrencyCode: "USD",
		ShippingAddress: &ShippingAddress{
			Address1: "1 Main St",
			City:     "Springfield",
			Country:  "US",
		},
	}
}

func TestRenderConfirmation(t *testing.T) {
	subject, html, err := Render(confirmationPayload())
	require.NoError(t, err)

	assert.Equal(t, "Order Confirmed - #1042", subject)
	assert.Contains(t, html, "Hi Jane Doe")
	assert.Contains(t, html, "#1042")
	assert.Contains(t, html, "Sample Tee")
	assert.Contains(t, html, "USD 24.99")
	assert.Contains(t, html, "USD 59.98")
	assert.Contains(t, html, "Springfield")
}

func TestRenderConfirmationFallsBackWhenNameMissing(t *testing.T) {
	p := confirmationPayload()
	p.CustomerName = ""

	_, html, err := Render(p)
	require.NoError(t, err)
	assert.Contains(t, html, "Hi there")
}

func TestRenderShippedIncludesTrackingLinkWhenPresent(t *testing.T) {
	p := confirmationPayload()
	p.Type = TypeShipped
	p.TrackingURL = "https://track.example.com/abc"

	subject, html, err := Render(p)
	require.NoError(t, err)
	assert.Equal(t, "Your Order Has Shipped - #1042", subject)
	assert.Contains(t, html, "https://track.example.com/abc")
}

func TestRenderShippedOmitsTrackingBlockWhenAbsent(t *testing.T) {
	p := confirmationPayload()
	p.Type = TypeShipped

	_, html, err := Render(p)
	require.NoError(t, err)
	assert.NotContains(t, html, "Track Your Package")
}

func TestRenderDeliveredSubject(t *testing.T) {
	p := confirmationPayload()
	p.Type = TypeDelivered

	subject, _, err := Render(p)
	require.NoError(t, err)
	assert.Equal(t, "Your Order Has Arrived - #1042", subject)
}

func TestRenderRejectsUnknownType(t *testing.T) {
	p := confirmationPayload()
	p.Type = "password_reset"

	_, _, err := Render(p)
	assert.Error(t, err)
}

func TestRenderEscapesHTMLInTitles(t *testing.T) {
	p := confirmationPayload()
	p.Items[0].Title = `<script>alert("x")</script>`

	_, html, err := Render(p)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
