package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/profiles"
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

func samplePayload() OrderPayload {
	var p OrderPayload
	body := []byte(`{
		"id": 5001,
		"order_number": 1042,
		"name": "#1042",
		"email": "jane@example.com",
		"financial_status": "paid",
		"fulfillment_status": "",
		"total_price": "59.98",
		"subtotal_price": "49.99",
		"total_tax": "4.99",
		"total_shipping_price_set": {"shop_money": {"amount": "5.00"}},
		"currency": "USD",
		"customer": {"first_name": "Jane", "last_name": "Doe"},
		"line_items": [
			{"product_id": 8001, "variant_id": 9001, "title": "Sample Tee", "variant_title": "M", "quantity": 2, "price": "24.99"}
		],
		"shipping_address": {"city": "Springfield"}
	}`)
	if err := json.Unmarshal(body, &p); err != nil {
		panic(err)
	}
	return p
}

func TestIngestRecordsOrderItemsAndOutboxTask(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, profiles.NewRepo(db), slog.Default())

	// profile lookup misses; order is stored without a user
	mock.ExpectQuery("SELECT `id` FROM `profiles`").
		WithArgs("jane@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `order_items`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `email_outbox`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	res, err := svc.Ingest(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.NotEmpty(t, res.OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngestDuplicateDeliveryIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, profiles.NewRepo(db), slog.Default())

	mock.ExpectQuery("SELECT `id` FROM `profiles`").
		WithArgs("jane@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// the unique index on shopify_order_id rejects the second delivery;
	// no items and no outbox task follow
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnError(&sqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectCommit()

	res, err := svc.Ingest(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngestAbsorbsItemInsertFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, profiles.NewRepo(db), slog.Default())

	mock.ExpectQuery("SELECT `id` FROM `profiles`").
		WithArgs("jane@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `order_items`").
		WillReturnError(assert.AnError)
	mock.ExpectExec("INSERT INTO `email_outbox`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	res, err := svc.Ingest(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
