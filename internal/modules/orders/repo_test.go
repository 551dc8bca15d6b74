package orders

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func orderRow(id, shopifyID, email string, userID *string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, shopifyID, "1042", email, userID, "confirmed", "paid", nil,
		"59.98", "49.99", "4.99", "5.00", "USD",
		nil, nil, nil, now, now,
	}
}

var orderCols = []string{
	"id", "shopify_order_id", "shopify_order_number", "email", "user_id",
	"status", "financial_status", "fulfillment_status",
	"total_price", "subtotal_price", "total_tax", "total_shipping", "currency_code",
	"customer_name", "shipping_address", "billing_address", "created_at", "updated_at",
}

func TestListByUserMatchesGuestOrdersByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `orders`").
		WithArgs("user-1", "jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery("SELECT \\* FROM `orders`").
		WithArgs("user-1", "jane@example.com", 20).
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(orderRow("order-1", "5001", "jane@example.com", nil)...))

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `order_items`").
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	res, err := repo.ListByUser(context.Background(), ListByUserParams{
		UserID: "user-1",
		Email:  "jane@example.com",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "order-1", res.Items[0].Order.ID)
	assert.Nil(t, res.Items[0].Order.UserID)
	assert.Equal(t, 2, res.Items[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUserAppliesStatusFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `orders`").
		WithArgs("user-1", "jane@example.com", "shipped").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery("SELECT \\* FROM `orders`").
		WithArgs("user-1", "jane@example.com", "shipped", 20).
		WillReturnRows(sqlmock.NewRows(orderCols))

	res, err := repo.ListByUser(context.Background(), ListByUserParams{
		UserID: "user-1",
		Email:  "jane@example.com",
		Status: "shipped",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithItemsLoadsItemsInOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepo(db)

	uid := "user-1"
	mock.ExpectQuery("SELECT \\* FROM `orders`").
		WithArgs("order-1", 1).
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(orderRow("order-1", "5001", "jane@example.com", &uid)...))

	itemCols := []string{"id", "order_id", "shopify_product_id", "shopify_variant_id",
		"product_title", "variant_title", "quantity", "price", "total", "image_url", "created_at"}
	mock.ExpectQuery("SELECT \\* FROM `order_items`").
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow("item-1", "order-1", "8001", "9001", "Sample Tee", "M", 2, "24.99", "49.98", nil, time.Now()))

	o, items, err := repo.GetWithItems(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "5001", o.ShopifyOrderID)
	require.Len(t, items, 1)
	assert.Equal(t, "Sample Tee", items[0].ProductTitle)
	assert.Equal(t, 2, items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
