package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shopify"
)

type mockCheckout struct {
	mu      sync.Mutex
	calls   int
	lines   []shopify.CheckoutLine
	session shopify.CheckoutSession
	err     error
	entered chan struct{} // signalled once per call, when set
	block   chan struct{} // when set, CartCreate waits until closed
}

func (m *mockCheckout) CartCreate(_ context.Context, lines []shopify.CheckoutLine) (shopify.CheckoutSession, error) {
	m.mu.Lock()
	m.calls++
	m.lines = lines
	entered := m.entered
	block := m.block
	m.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if m.err != nil {
		return shopify.CheckoutSession{}, m.err
	}
	return m.session, nil
}

func newTestService(co *mockCheckout) (*Service, SnapshotStore) {
	store := NewMemoryStore()
	return NewService(store, co, nil), store
}

func TestCreateCheckoutBuildsLines(t *testing.T) {
	co := &mockCheckout{session: shopify.CheckoutSession{CheckoutURL: "https://shop.example/checkout?channel=online_store"}}
	svc, _ := newTestService(co)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", line("v1", "10.00", 2))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "c1", line("v2", "5.00", 1))
	require.NoError(t, err)

	session, err := svc.CreateCheckout(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/checkout?channel=online_store", session.CheckoutURL)
	assert.Equal(t, []shopify.CheckoutLine{
		{Quantity: 2, MerchandiseID: "v1"},
		{Quantity: 1, MerchandiseID: "v2"},
	}, co.lines)
}

func TestCreateCheckoutEmptyCart(t *testing.T) {
	svc, _ := newTestService(&mockCheckout{})
	_, err := svc.CreateCheckout(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCreateCheckoutFailureLeavesCartUntouched(t *testing.T) {
	co := &mockCheckout{err: errors.New("cart creation failed: variant unavailable")}
	svc, _ := newTestService(co)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", line("v1", "10.00", 2))
	require.NoError(t, err)

	_, err = svc.CreateCheckout(ctx, "c1")
	require.Error(t, err)

	c, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestCreateCheckoutRejectsConcurrentReentry(t *testing.T) {
	co := &mockCheckout{
		session: shopify.CheckoutSession{CheckoutURL: "https://shop.example/checkout"},
		entered: make(chan struct{}, 2),
		block:   make(chan struct{}),
	}
	svc, _ := newTestService(co)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", line("v1", "10.00", 1))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.CreateCheckout(ctx, "c1")
		done <- err
	}()

	// Wait until the first call is inside CartCreate.
	<-co.entered

	_, err = svc.CreateCheckout(ctx, "c1")
	assert.ErrorIs(t, err, ErrCheckoutInFlight)

	close(co.block)
	require.NoError(t, <-done)

	// The guard clears after the call resolves.
	_, err = svc.CreateCheckout(ctx, "c1")
	assert.NoError(t, err)
}

func TestServicePersistsAcrossInstances(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	svc1 := NewService(store, &mockCheckout{}, nil)
	_, err := svc1.AddItem(ctx, "c1", line("v1", "10.00", 2))
	require.NoError(t, err)

	svc2 := NewService(store, &mockCheckout{}, nil)
	c, err := svc2.Get(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "v1", c.Lines[0].VariantID)
}

func TestClearDeletesSnapshot(t *testing.T) {
	svc, store := newTestService(&mockCheckout{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", line("v1", "10.00", 1))
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "c1"))

	c, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, c)
}
