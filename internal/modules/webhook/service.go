package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/notify"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/orders"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/outbox"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/profiles"
)

// Service records orders pushed by the upstream platform. Ingestion is
// idempotent: the unique index on shopify_order_id makes a duplicate
// delivery a no-op, with no read-then-write window.
type Service struct {
	db       *gorm.DB
	profiles *profiles.Repo
	logger   *slog.Logger
}

func NewService(db *gorm.DB, profileRepo *profiles.Repo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{db: db, profiles: profileRepo, logger: logger}
}

type IngestResult struct {
	OrderID string
	Created bool // false when the order already existed
}

// Ingest persists the order, its items, and the confirmation-email outbox
// task. Only a failure on the order row itself propagates; item and outbox
// failures are logged and absorbed — an order record without items beats no
// record at all.
func (s *Service) Ingest(ctx context.Context, p OrderPayload) (IngestResult, error) {
	var userID *string
	if p.Email != "" {
		id, err := s.profiles.FindIDByEmail(ctx, p.Email)
		if err != nil {
			s.logger.WarnContext(ctx, "profile lookup failed", "email", p.Email, "err", err)
		} else if id != "" {
			userID = &id
		}
	}
	if userID == nil {
		s.logger.InfoContext(ctx, "no profile for order email, storing without user", "shopify_order_id", p.ID.String())
	}

	now := time.Now()
	order := orders.Order{
		ID:                 uuid.NewString(),
		ShopifyOrderID:     p.ID.String(),
		ShopifyOrderNumber: p.OrderNumberOrName(),
		Email:              p.Email,
		UserID:             userID,
		Status:             orders.MapStatus(p.FulfillmentStatus, p.FinancialStatus),
		FinancialStatus:    optional(p.FinancialStatus),
		FulfillmentStatus:  optional(p.FulfillmentStatus),
		TotalPrice:         parseAmount(p.TotalPrice),
		SubtotalPrice:      parseAmount(p.SubtotalPrice),
		TotalTax:           parseAmount(p.TotalTax),
		TotalShipping:      parseAmount(p.TotalShipping.ShopMoney.Amount),
		CurrencyCode:       currencyOrDefault(p.Currency),
		CustomerName:       optional(p.CustomerName()),
		ShippingAddress:    jsonColumn(p.ShippingAddress),
		BillingAddress:     jsonColumn(p.BillingAddress),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created := true
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			if orders.IsDup(err) {
				created = false
				s.logger.InfoContext(ctx, "order already exists", "shopify_order_id", order.ShopifyOrderID)
				return nil
			}
			return err
		}

		if items := s.buildItems(order.ID, p.LineItems, now); len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				// Lenient on purpose: keep the order row.
				s.logger.ErrorContext(ctx, "order item insert failed",
					"order_id", order.ID, "items", len(items), "err", err)
			}
		}

		if err := outbox.Enqueue(tx, s.confirmationPayload(order, p)); err != nil {
			s.logger.ErrorContext(ctx, "confirmation email enqueue failed",
				"order_id", order.ID, "err", err)
		}
		return nil
	})
	if err != nil {
		return IngestResult{}, err
	}

	if created {
		s.logger.InfoContext(ctx, "order recorded",
			"order_id", order.ID, "shopify_order_id", order.ShopifyOrderID, "status", order.Status)
	}
	return IngestResult{OrderID: order.ID, Created: created}, nil
}

func (s *Service) buildItems(orderID string, lines []LineItem, now time.Time) []orders.OrderItem {
	items := make([]orders.OrderItem, 0, len(lines))
	for _, li := range lines {
		qty := li.Quantity
		if qty < 1 {
			qty = 1
		}
		price := parseAmount(li.Price)
		title := li.Title
		if title == "" {
			title = "Unknown Product"
		}
		var imageURL *string
		if li.Image != nil && li.Image.Src != "" {
			imageURL = &li.Image.Src
		}
		items = append(items, orders.OrderItem{
			ID:               uuid.NewString(),
			OrderID:          orderID,
			ShopifyProductID: li.ProductID.String(),
			ShopifyVariantID: li.VariantID.String(),
			ProductTitle:     title,
			VariantTitle:     optional(li.VariantTitle),
			Quantity:         qty,
			Price:            price,
			Total:            price.Mul(decimal.NewFromInt(int64(qty))),
			ImageURL:         imageURL,
			CreatedAt:        now,
		})
	}
	return items
}

func (s *Service) confirmationPayload(order orders.Order, p OrderPayload) notify.Payload {
	items := make([]notify.Item, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		items = append(items, notify.Item{
			Title:    li.Title,
			Quantity: li.Quantity,
			Price:    parseAmount(li.Price),
		})
	}

	payload := notify.Payload{
		Type:         notify.TypeConfirmation,
		Email:        order.Email,
		CustomerName: p.CustomerName(),
		OrderNumber:  order.ShopifyOrderNumber,
		Items:        items,
		TotalPrice:   order.TotalPrice,
		CurrencyCode: order.CurrencyCode,
	}
	if payload.CustomerName == "" {
		payload.CustomerName = "Customer"
	}
	if len(p.ShippingAddress) > 0 {
		var addr notify.ShippingAddress
		if err := json.Unmarshal(p.ShippingAddress, &addr); err == nil {
			payload.ShippingAddress = &addr
		}
	}
	return payload
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "USD"
	}
	return c
}

func jsonColumn(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return datatypes.JSON(raw)
}
