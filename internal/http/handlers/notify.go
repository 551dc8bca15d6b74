package handlers

import (
	"crypto/hmac"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/notify"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

// Notify is the transactional-email dispatcher endpoint. Callers are internal
// services holding the shared bearer token.
type Notify struct {
	Token string
	Svc   *notify.Service
}

func (h *Notify) Send(c *gin.Context) {
	if !h.authorized(c.GetHeader("Authorization")) {
		middleware.Fail(c, apperr.UnauthorizedErr("missing or invalid bearer token"))
		return
	}

	var p notify.Payload
	if err := c.ShouldBindJSON(&p); err != nil {
		middleware.Fail(c, bindErr(err))
		return
	}

	if err := h.Svc.Send(c.Request.Context(), p); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}

func (h *Notify) authorized(header string) bool {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return hmac.Equal([]byte(token), []byte(h.Token))
}
