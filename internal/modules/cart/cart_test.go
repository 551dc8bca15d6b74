package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(variantID, amount string, qty int) Line {
	return Line{
		VariantID:    variantID,
		PriceAmount:  amount,
		CurrencyCode: "USD",
		Quantity:     qty,
	}
}

func TestAddItemMergesByVariant(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddItem(line("v1", "10.00", 2)))
	require.NoError(t, c.AddItem(line("v1", "10.00", 3)))
	require.NoError(t, c.AddItem(line("v1", "10.00", 1)))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 6, c.Lines[0].Quantity)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddItem(line("v1", "10.00", 0)))
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestAddItemRejectsMixedCurrency(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddItem(line("v1", "10.00", 1)))

	other := line("v2", "5.00", 1)
	other.CurrencyCode = "EUR"
	assert.ErrorIs(t, c.AddItem(other), ErrMixedCurrency)
	assert.Len(t, c.Lines, 1)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddItem(line("v1", "10.00", 2)))

	c.UpdateQuantity("v1", 0)
	assert.Empty(t, c.Lines)
}

func TestUpdateQuantitySetsExactly(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddItem(line("v1", "10.00", 2)))

	c.UpdateQuantity("v1", 7)
	assert.Equal(t, 7, c.Lines[0].Quantity)
}

func TestUpdateQuantityUnknownVariantIsNoop(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddItem(line("v1", "10.00", 2)))

	c.UpdateQuantity("missing", 5)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestRemoveItemUnknownVariantLeavesCartUnchanged(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddItem(line("v1", "10.00", 2)))
	before := append([]Line(nil), c.Lines...)

	c.RemoveItem("missing")
	assert.Equal(t, before, c.Lines)
}

func TestSubtotalAndCount(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddItem(line("v1", "10.00", 2)))
	require.NoError(t, c.AddItem(line("v2", "5.00", 1)))

	assert.Equal(t, "25.00", c.Subtotal().StringFixed(2))
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, "USD", c.Currency())
}

func TestSubtotalSkipsUnparseableAmounts(t *testing.T) {
	var c Cart
	require.NoError(t, c.AddItem(line("v1", "not-a-number", 3)))
	require.NoError(t, c.AddItem(line("v2", "1.50", 2)))

	assert.Equal(t, "3.00", c.Subtotal().StringFixed(2))
}
