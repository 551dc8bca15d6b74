package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/cartcookie"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/cart"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

// Checkout exchanges the local cart for an upstream checkout URL. The cart
// survives the exchange; completed purchases come back through webhooks.
type Checkout struct {
	Svc    *cart.Service
	Cookie *cartcookie.Codec
}

func (h *Checkout) Create(c *gin.Context) {
	sess, err := h.Svc.CreateCheckout(c.Request.Context(), h.Cookie.CartID(c))
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrCartEmpty):
			middleware.Fail(c, apperr.InvalidErr("cart is empty", nil))
		case errors.Is(err, cart.ErrCheckoutInFlight):
			middleware.Fail(c, apperr.ConflictErr("a checkout is already in progress for this cart"))
		default:
			middleware.Fail(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"checkoutUrl":   sess.CheckoutURL,
		"totalQuantity": sess.TotalQuantity,
		"total":         sess.Total,
	})
}
