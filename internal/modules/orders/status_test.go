package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	cases := []struct {
		fulfillment string
		financial   string
		want        Status
	}{
		{"fulfilled", "", StatusDelivered},
		{"fulfilled", "refunded", StatusDelivered}, // fulfillment wins
		{"partial", "", StatusShipped},
		{"partial", "paid", StatusShipped},
		{"in_transit", "pending", StatusShipped},
		{"", "paid", StatusConfirmed},
		{"restocked", "paid", StatusConfirmed},
		{"", "pending", StatusPending},
		{"", "refunded", StatusCancelled},
		{"", "voided", StatusPending},
		{"", "", StatusPending},
	}

	for _, tc := range cases {
		got := MapStatus(tc.fulfillment, tc.financial)
		assert.Equalf(t, tc.want, got, "fulfillment=%q financial=%q", tc.fulfillment, tc.financial)
	}
}
