package orders

import (
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Status is the local order status taxonomy. Upstream fulfillment/financial
// strings are kept verbatim next to it for audit.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// Order is the durable record of one upstream transaction. Exactly one row
// exists per shopify_order_id; re-deliveries of the same webhook no-op on
// the unique index.
type Order struct {
	ID                 string  `gorm:"type:char(36);primaryKey"`
	ShopifyOrderID     string  `gorm:"type:varchar(64);not null;uniqueIndex:ux_orders_shopify_order_id"`
	ShopifyOrderNumber string  `gorm:"type:varchar(64);not null"`
	Email              string  `gorm:"type:varchar(255);not null;index"`
	UserID             *string `gorm:"type:char(36);index"`
	Status             Status  `gorm:"type:varchar(32);not null"`
	FinancialStatus    *string `gorm:"type:varchar(64)"`
	FulfillmentStatus  *string `gorm:"type:varchar(64)"`

	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SubtotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalTax      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalShipping decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CurrencyCode  string          `gorm:"type:varchar(8);not null"`

	CustomerName    *string        `gorm:"type:varchar(255)"`
	ShippingAddress datatypes.JSON `gorm:"type:json"`
	BillingAddress  datatypes.JSON `gorm:"type:json"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is an immutable point-in-time snapshot of one line item, not a
// live reference into the catalog.
type OrderItem struct {
	ID               string          `gorm:"type:char(36);primaryKey"`
	OrderID          string          `gorm:"type:char(36);not null;index"`
	ShopifyProductID string          `gorm:"type:varchar(64);not null"`
	ShopifyVariantID string          `gorm:"type:varchar(64);not null"`
	ProductTitle     string          `gorm:"type:varchar(255);not null"`
	VariantTitle     *string         `gorm:"type:varchar(255)"`
	Quantity         int             `gorm:"not null"`
	Price            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ImageURL         *string         `gorm:"type:varchar(1024)"`
	CreatedAt        time.Time       `gorm:"type:datetime(3);not null"`
}

func (OrderItem) TableName() string { return "order_items" }

// IsDup reports a MySQL duplicate-key violation (error 1062).
func IsDup(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
