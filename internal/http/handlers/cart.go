package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/cartcookie"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/cart"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

// CartHandler exposes the server-side cart snapshot addressed by the signed
// cart-id cookie.
type CartHandler struct {
	Svc    *cart.Service
	Cookie *cartcookie.Codec
}

type addItemRequest struct {
	VariantID     string        `json:"variantId" binding:"required"`
	VariantTitle  string        `json:"variantTitle"`
	ProductTitle  string        `json:"productTitle" binding:"required"`
	ProductHandle string        `json:"productHandle"`
	ImageURL      string        `json:"imageUrl"`
	PriceAmount   string        `json:"priceAmount" binding:"required"`
	CurrencyCode  string        `json:"currencyCode" binding:"required"`
	Quantity      int           `json:"quantity"`
	Options       []cart.Option `json:"options"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *CartHandler) Get(c *gin.Context) {
	crt, err := h.Svc.Get(c.Request.Context(), h.Cookie.CartID(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c, crt)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, bindErr(err))
		return
	}
	crt, err := h.Svc.AddItem(c.Request.Context(), h.Cookie.CartID(c), cart.Line{
		VariantID:     req.VariantID,
		VariantTitle:  req.VariantTitle,
		ProductTitle:  req.ProductTitle,
		ProductHandle: req.ProductHandle,
		ImageURL:      req.ImageURL,
		PriceAmount:   req.PriceAmount,
		CurrencyCode:  req.CurrencyCode,
		Quantity:      req.Quantity,
		Options:       req.Options,
	})
	if err != nil {
		if errors.Is(err, cart.ErrMixedCurrency) {
			middleware.Fail(c, apperr.ConflictErr("all cart items must share one currency"))
			return
		}
		middleware.Fail(c, err)
		return
	}
	h.respond(c, crt)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, bindErr(err))
		return
	}
	crt, err := h.Svc.UpdateQuantity(c.Request.Context(), h.Cookie.CartID(c), c.Param("variantID"), req.Quantity)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c, crt)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	crt, err := h.Svc.RemoveItem(c.Request.Context(), h.Cookie.CartID(c), c.Param("variantID"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c, crt)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), h.Cookie.CartID(c)); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c, &cart.Cart{})
}

func (h *CartHandler) respond(c *gin.Context, crt *cart.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"cart":     crt,
		"count":    crt.Count(),
		"subtotal": crt.Subtotal(),
		"currency": crt.Currency(),
	})
}

// bindErr converts gin binding failures into a field-keyed validation error.
func bindErr(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return apperr.InvalidErr("invalid request body", fields)
	}
	return apperr.InvalidErr("invalid request body", nil)
}
