package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/addresses"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

type Addresses struct {
	Repo *addresses.Repo
}

type addressRequest struct {
	Label     *string `json:"label"`
	FullName  string  `json:"fullName" binding:"required"`
	Address1  string  `json:"address1" binding:"required"`
	Address2  *string `json:"address2"`
	City      string  `json:"city" binding:"required"`
	Province  string  `json:"province"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country" binding:"required"`
	Phone     *string `json:"phone"`
	IsDefault bool    `json:"isDefault"`
}

type addressView struct {
	ID        string  `json:"id"`
	Label     *string `json:"label,omitempty"`
	FullName  string  `json:"fullName"`
	Address1  string  `json:"address1"`
	Address2  *string `json:"address2,omitempty"`
	City      string  `json:"city"`
	Province  string  `json:"province,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country"`
	Phone     *string `json:"phone,omitempty"`
	IsDefault bool    `json:"isDefault"`
}

func (h *Addresses) List(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	rows, err := h.Repo.List(c.Request.Context(), userID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	out := make([]addressView, len(rows))
	for i, a := range rows {
		out[i] = viewAddress(a)
	}
	c.JSON(http.StatusOK, gin.H{"addresses": out})
}

func (h *Addresses) Create(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, bindErr(err))
		return
	}
	a, err := h.Repo.Create(c.Request.Context(), toAddress(req, userID, ""))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"address": viewAddress(a)})
}

func (h *Addresses) Update(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, bindErr(err))
		return
	}
	a, err := h.Repo.Update(c.Request.Context(), toAddress(req, userID, c.Param("id")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("address not found"))
			return
		}
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": viewAddress(a)})
}

func (h *Addresses) Delete(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toAddress(req addressRequest, userID, id string) addresses.Address {
	return addresses.Address{
		ID:        id,
		UserID:    userID,
		Label:     req.Label,
		FullName:  req.FullName,
		Address1:  req.Address1,
		Address2:  req.Address2,
		City:      req.City,
		Province:  req.Province,
		Zip:       req.Zip,
		Country:   req.Country,
		Phone:     req.Phone,
		IsDefault: req.IsDefault,
	}
}

func viewAddress(a addresses.Address) addressView {
	return addressView{
		ID:        a.ID,
		Label:     a.Label,
		FullName:  a.FullName,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		Province:  a.Province,
		Zip:       a.Zip,
		Country:   a.Country,
		Phone:     a.Phone,
		IsDefault: a.IsDefault,
	}
}
