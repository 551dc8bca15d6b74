package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/reviews"
)

type Reviews struct {
	Repo *reviews.Repo
}

type createReviewRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
}

type reviewView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Title     *string   `json:"title,omitempty"`
	Content   *string   `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListByProduct is public; reviews belong to a product page, not a customer.
func (h *Reviews) ListByProduct(c *gin.Context) {
	rows, err := h.Repo.ListByProductHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	out := make([]reviewView, len(rows))
	for i, r := range rows {
		out[i] = reviewView{ID: r.ID, UserID: r.UserID, Rating: r.Rating, Title: r.Title, Content: r.Content, CreatedAt: r.CreatedAt}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": out})
}

func (h *Reviews) Create(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, bindErr(err))
		return
	}
	r, err := h.Repo.Create(c.Request.Context(), reviews.CreateParams{
		UserID:        userID,
		ProductID:     req.ProductID,
		ProductHandle: c.Param("handle"),
		Rating:        req.Rating,
		Title:         req.Title,
		Content:       req.Content,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": reviewView{
		ID: r.ID, UserID: r.UserID, Rating: r.Rating, Title: r.Title, Content: r.Content, CreatedAt: r.CreatedAt,
	}})
}

// Delete is idempotent; repeating it (or naming someone else's review)
// still answers 204.
func (h *Reviews) Delete(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
