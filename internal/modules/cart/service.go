package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shopify"
)

var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("checkout already in progress")
)

// CheckoutCreator is the slice of the Storefront client the cart needs.
type CheckoutCreator interface {
	CartCreate(ctx context.Context, lines []shopify.CheckoutLine) (shopify.CheckoutSession, error)
}

// Service is the authoritative cart state, addressed by cart id. Every
// mutation goes through the snapshot store, so any server instance can
// handle any request.
type Service struct {
	store    SnapshotStore
	checkout CheckoutCreator
	logger   *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{} // cart ids with a pending checkout call
}

func NewService(store SnapshotStore, checkout CheckoutCreator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    store,
		checkout: checkout,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Get returns the cart, empty when no snapshot exists.
func (s *Service) Get(ctx context.Context, cartID string) (*Cart, error) {
	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = &Cart{}
	}
	return c, nil
}

func (s *Service) AddItem(ctx context.Context, cartID string, l Line) (*Cart, error) {
	c, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := c.AddItem(l); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateQuantity(ctx context.Context, cartID, variantID string, qty int) (*Cart, error) {
	c, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	c.UpdateQuantity(variantID, qty)
	if err := s.store.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) RemoveItem(ctx context.Context, cartID, variantID string) (*Cart, error) {
	c, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	c.RemoveItem(variantID)
	if err := s.store.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Clear(ctx context.Context, cartID string) error {
	return s.store.Delete(ctx, cartID)
}

// CreateCheckout submits the cart to the upstream platform and returns the
// hosted checkout session. Re-entry for the same cart is rejected while a
// call is pending; a failed call leaves the cart untouched. The cart is not
// cleared on success, the visitor keeps it until they empty it themselves.
func (s *Service) CreateCheckout(ctx context.Context, cartID string) (shopify.CheckoutSession, error) {
	s.mu.Lock()
	if _, busy := s.inFlight[cartID]; busy {
		s.mu.Unlock()
		return shopify.CheckoutSession{}, ErrCheckoutInFlight
	}
	s.inFlight[cartID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, cartID)
		s.mu.Unlock()
	}()

	c, err := s.Get(ctx, cartID)
	if err != nil {
		return shopify.CheckoutSession{}, err
	}
	if len(c.Lines) == 0 {
		return shopify.CheckoutSession{}, ErrCartEmpty
	}

	lines := make([]shopify.CheckoutLine, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = shopify.CheckoutLine{Quantity: l.Quantity, MerchandiseID: l.VariantID}
	}

	session, err := s.checkout.CartCreate(ctx, lines)
	if err != nil {
		s.logger.ErrorContext(ctx, "checkout creation failed", "cart_id", cartID, "err", err)
		return shopify.CheckoutSession{}, err
	}

	s.logger.InfoContext(ctx, "checkout created", "cart_id", cartID, "quantity", session.TotalQuantity)
	return session, nil
}
