package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/mailer"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/notify"
)

const notifyToken = "test-dispatcher-token"

func newNotifyRig(mock *mailer.Mock) *gin.Engine {
	logger := slog.Default()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))
	h := &Notify{
		Token: notifyToken,
		Svc:   notify.NewService(mock, "orders@example.com", "Example Shop", logger),
	}
	r.POST("/send-order-email", h.Send)
	return r
}

func postNotify(r *gin.Engine, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/send-order-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validNotifyBody = `{
	"type": "confirmation",
	"email": "jane@example.com",
	"customerName": "Jane Doe",
	"orderNumber": "1042",
	"items": [{"title": "Sample Tee", "quantity": 2, "price": "24.99"}],
	"totalPrice": "59.98",
	"currencyCode": "USD"
}`

func TestSendRequiresBearerToken(t *testing.T) {
	mock := &mailer.Mock{}
	r := newNotifyRig(mock)

	for _, auth := range []string{"", "Bearer wrong-token", "Basic abc"} {
		w := postNotify(r, auth, validNotifyBody)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "auth=%q", auth)
	}
	assert.Empty(t, mock.Sent)
}

func TestSendDeliversConfirmationEmail(t *testing.T) {
	mock := &mailer.Mock{}
	r := newNotifyRig(mock)

	w := postNotify(r, "Bearer "+notifyToken, validNotifyBody)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mock.Sent, 1)
	sent := mock.Sent[0]
	assert.Equal(t, []string{"jane@example.com"}, sent.To)
	assert.Equal(t, "Order Confirmed - #1042", sent.Subject)
	assert.Contains(t, sent.HTMLBody, "Sample Tee")
}

func TestSendRejectsUnknownType(t *testing.T) {
	mock := &mailer.Mock{}
	r := newNotifyRig(mock)

	body := strings.Replace(validNotifyBody, "confirmation", "password_reset", 1)
	w := postNotify(r, "Bearer "+notifyToken, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mock.Sent)
}

func TestSendRejectsMissingFields(t *testing.T) {
	mock := &mailer.Mock{}
	r := newNotifyRig(mock)

	w := postNotify(r, "Bearer "+notifyToken, `{"type":"confirmation"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mock.Sent)
}

func TestSendReportsProviderFailure(t *testing.T) {
	mock := &mailer.Mock{Err: errors.New("smtp refused")}
	r := newNotifyRig(mock)

	w := postNotify(r, "Bearer "+notifyToken, validNotifyBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
