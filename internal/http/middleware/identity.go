package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shared/apperr"
)

// Authentication lives in the fronting auth proxy; this service trusts the
// identity headers it sets. An absent header means a guest visitor.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
	ctxKeyUserID    = "user_id"
	ctxKeyUserEmail = "user_email"
)

func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(HeaderUserID); id != "" {
			c.Set(ctxKeyUserID, id)
		}
		if email := c.GetHeader(HeaderUserEmail); email != "" {
			c.Set(ctxKeyUserEmail, email)
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(ctxKeyUserID)
	return id, id != ""
}

func CurrentUserEmail(c *gin.Context) string {
	return c.GetString(ctxKeyUserEmail)
}

// RequireUser guards the account-scoped surfaces.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			Fail(c, apperr.UnauthorizedErr("Sign in to continue."))
			return
		}
		c.Next()
	}
}
