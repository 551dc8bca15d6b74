package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/webhook"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

const maxWebhookBody = 1 << 20 // 1 MiB

// Webhooks receives upstream order events. The signature is verified over
// the raw bytes before anything is parsed or written.
type Webhooks struct {
	Secret []byte
	Svc    *webhook.Service
	Logger *slog.Logger
}

func (h *Webhooks) OrderEvent(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("unreadable body", nil))
		return
	}

	sig := c.GetHeader(webhook.SignatureHeader)
	if !webhook.VerifySignature(h.Secret, body, sig) {
		h.Logger.Warn("webhook signature rejected", "topic", c.GetHeader("X-Shopify-Topic"))
		middleware.Fail(c, apperr.UnauthorizedErr("invalid webhook signature"))
		return
	}

	var p webhook.OrderPayload
	if err := json.Unmarshal(body, &p); err != nil {
		middleware.Fail(c, apperr.InvalidErr("malformed payload", nil))
		return
	}

	res, err := h.Svc.Ingest(c.Request.Context(), p)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true, "orderId": res.OrderID, "created": res.Created})
}
