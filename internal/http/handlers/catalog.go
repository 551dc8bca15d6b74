package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shopify"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Catalog proxies the storefront catalog. Nothing is persisted locally; the
// upstream API is the source of truth for products and collections.
type Catalog struct {
	Shop *shopify.Client
}

func (h *Catalog) Collections(c *gin.Context) {
	cols, err := h.Shop.Collections(c.Request.Context(), firstParam(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": cols})
}

func (h *Catalog) Products(c *gin.Context) {
	full := c.Query("view") != "summary"
	prods, err := h.Shop.Products(c.Request.Context(), firstParam(c), c.Query("q"), full)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": prods})
}

func (h *Catalog) ProductByHandle(c *gin.Context) {
	p, err := h.Shop.ProductByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if p == nil {
		middleware.Fail(c, apperr.NotFoundErr("product not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (h *Catalog) ProductsByCollection(c *gin.Context) {
	col, err := h.Shop.ProductsByCollection(c.Request.Context(), c.Param("handle"), firstParam(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if col == nil {
		middleware.Fail(c, apperr.NotFoundErr("collection not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": col})
}

func firstParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("first"))
	if err != nil || n < 1 {
		return defaultPageSize
	}
	if n > maxPageSize {
		return maxPageSize
	}
	return n
}
