package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/wishlist"
)

type Wishlist struct {
	Repo *wishlist.Repo
}

type wishlistItemView struct {
	ProductID     string    `json:"productId"`
	ProductHandle string    `json:"productHandle"`
	AddedAt       time.Time `json:"addedAt"`
}

type toggleRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	ProductHandle string `json:"productHandle" binding:"required"`
}

func (h *Wishlist) List(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	rows, err := h.Repo.List(c.Request.Context(), userID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	out := make([]wishlistItemView, len(rows))
	for i, it := range rows {
		out[i] = wishlistItemView{ProductID: it.ProductID, ProductHandle: it.ProductHandle, AddedAt: it.CreatedAt}
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

// Toggle flips membership and reports the resulting state, so the client
// never needs to know the current one first.
func (h *Wishlist) Toggle(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, bindErr(err))
		return
	}
	onList, err := h.Repo.Toggle(c.Request.Context(), userID, req.ProductID, req.ProductHandle)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"onList": onList})
}

func (h *Wishlist) Remove(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	if err := h.Repo.Remove(c.Request.Context(), userID, c.Param("productID")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Wishlist) Contains(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	ok, err := h.Repo.Contains(c.Request.Context(), userID, c.Param("productID"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"onList": ok})
}
