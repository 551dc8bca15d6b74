package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/orders"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

// Orders serves the signed-in customer's order history. The webhook ingest
// writes these rows; this surface only reads them.
type Orders struct {
	Repo *orders.Repo
}

type orderSummary struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Status      orders.Status   `json:"status"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Currency    string          `json:"currency"`
	ItemCount   int             `json:"itemCount"`
	PlacedAt    time.Time       `json:"placedAt"`
}

type orderItemView struct {
	ProductTitle string          `json:"productTitle"`
	VariantTitle *string         `json:"variantTitle,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
	ImageURL     *string         `json:"imageUrl,omitempty"`
}

type orderDetail struct {
	orderSummary
	Email           string          `json:"email"`
	SubtotalPrice   decimal.Decimal `json:"subtotalPrice"`
	TotalTax        decimal.Decimal `json:"totalTax"`
	TotalShipping   decimal.Decimal `json:"totalShipping"`
	CustomerName    *string         `json:"customerName,omitempty"`
	ShippingAddress json.RawMessage `json:"shippingAddress,omitempty"`
	BillingAddress  json.RawMessage `json:"billingAddress,omitempty"`
	Items           []orderItemView `json:"items"`
}

func (h *Orders) List(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("pageSize"))

	res, err := h.Repo.ListByUser(c.Request.Context(), orders.ListByUserParams{
		UserID:   userID,
		Email:    middleware.CurrentUserEmail(c),
		Page:     page,
		PageSize: size,
		Status:   c.Query("status"),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	out := make([]orderSummary, len(res.Items))
	for i, it := range res.Items {
		out[i] = summarize(it.Order, it.Count)
	}
	c.JSON(http.StatusOK, gin.H{"orders": out, "total": res.Total})
}

func (h *Orders) Get(c *gin.Context) {
	o, items, err := h.Repo.GetWithItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("order not found"))
			return
		}
		middleware.Fail(c, err)
		return
	}
	if !h.owns(c, o) {
		// not-found rather than forbidden: do not confirm the order exists
		middleware.Fail(c, apperr.NotFoundErr("order not found"))
		return
	}

	d := orderDetail{
		orderSummary:    summarize(o, len(items)),
		Email:           o.Email,
		SubtotalPrice:   o.SubtotalPrice,
		TotalTax:        o.TotalTax,
		TotalShipping:   o.TotalShipping,
		CustomerName:    o.CustomerName,
		ShippingAddress: json.RawMessage(o.ShippingAddress),
		BillingAddress:  json.RawMessage(o.BillingAddress),
		Items:           make([]orderItemView, len(items)),
	}
	for i, it := range items {
		d.Items[i] = orderItemView{
			ProductTitle: it.ProductTitle,
			VariantTitle: it.VariantTitle,
			Quantity:     it.Quantity,
			Price:        it.Price,
			Total:        it.Total,
			ImageURL:     it.ImageURL,
		}
	}
	c.JSON(http.StatusOK, gin.H{"order": d})
}

func (h *Orders) owns(c *gin.Context, o orders.Order) bool {
	if userID, ok := middleware.CurrentUserID(c); ok && o.UserID != nil && *o.UserID == userID {
		return true
	}
	if email := middleware.CurrentUserEmail(c); email != "" && strings.EqualFold(o.Email, email) {
		return true
	}
	return false
}

func summarize(o orders.Order, count int) orderSummary {
	return orderSummary{
		ID:          o.ID,
		OrderNumber: o.ShopifyOrderNumber,
		Status:      o.Status,
		TotalPrice:  o.TotalPrice,
		Currency:    o.CurrencyCode,
		ItemCount:   count,
		PlacedAt:    o.CreatedAt,
	}
}
