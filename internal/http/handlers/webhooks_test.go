package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/profiles"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/webhook"
)

var webhookSecret = []byte("shpss_test_secret")

func newWebhookRig(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	logger := slog.Default()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))
	h := &Webhooks{
		Secret: webhookSecret,
		Svc:    webhook.NewService(db, profiles.NewRepo(db), logger),
		Logger: logger,
	}
	r.POST("/webhooks/shopify/orders", h.OrderEvent)
	return r, mock
}

func postWebhook(r *gin.Engine, body []byte, sig string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/shopify/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sig != "" {
		req.Header.Set(webhook.SignatureHeader, sig)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrderEventRejectsMissingSignature(t *testing.T) {
	r, mock := newWebhookRig(t)

	w := postWebhook(r, []byte(`{"id":1}`), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// nothing touched the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderEventRejectsBadSignature(t *testing.T) {
	r, mock := newWebhookRig(t)

	body := []byte(`{"id":1}`)
	w := postWebhook(r, body, webhook.Sign([]byte("wrong-secret"), body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderEventRejectsMalformedJSON(t *testing.T) {
	r, mock := newWebhookRig(t)

	body := []byte(`{not json`)
	w := postWebhook(r, body, webhook.Sign(webhookSecret, body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderEventIngestsSignedOrder(t *testing.T) {
	r, mock := newWebhookRig(t)

	mock.ExpectQuery("SELECT `id` FROM `profiles`").
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `order_items`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `email_outbox`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body := []byte(`{
		"id": 5001,
		"order_number": 1042,
		"email": "jane@example.com",
		"financial_status": "paid",
		"total_price": "59.98",
		"subtotal_price": "49.99",
		"total_tax": "4.99",
		"currency": "USD",
		"line_items": [{"product_id": 8001, "variant_id": 9001, "title": "Sample Tee", "quantity": 2, "price": "24.99"}]
	}`)
	w := postWebhook(r, body, webhook.Sign(webhookSecret, body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"received":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
