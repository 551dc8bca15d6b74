package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/profiles"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

type Profile struct {
	Repo *profiles.Repo
}

type profileView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"fullName,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type updateProfileRequest struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}

func (h *Profile) Get(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	p, err := h.Repo.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("profile not found"))
			return
		}
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": viewProfile(p)})
}

func (h *Profile) Update(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, bindErr(err))
		return
	}
	p, err := h.Repo.Update(c.Request.Context(), userID, profiles.UpdateParams{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("profile not found"))
			return
		}
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": viewProfile(p)})
}

func viewProfile(p profiles.Profile) profileView {
	return profileView{ID: p.ID, Email: p.Email, FullName: p.FullName, Phone: p.Phone, CreatedAt: p.CreatedAt}
}
