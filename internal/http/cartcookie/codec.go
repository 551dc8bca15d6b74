package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid cart cookie")

// Codec mints and verifies the signed cart-id cookie. The id addresses the
// server-side cart snapshot; the signature stops visitors from grazing each
// other's carts by guessing ids.
type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	if name == "" {
		name = "cart_id"
	}
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: cartID.base64(hmac(cartID))
func (c *Codec) Encode(cartID string) string {
	return cartID + "." + sign(c.Secret, cartID)
}

func (c *Codec) Decode(v string) (string, error) {
	id, sig, ok := strings.Cut(v, ".")
	if !ok || id == "" {
		return "", ErrInvalid
	}
	if !hmac.Equal([]byte(sign(c.Secret, id)), []byte(sig)) {
		return "", ErrInvalid
	}
	return id, nil
}

// CartID returns the verified cart id, minting a fresh one (and setting the
// cookie) when the request carries none or a tampered value.
func (c *Codec) CartID(ctx *gin.Context) string {
	if v, err := ctx.Cookie(c.CookieName); err == nil && v != "" {
		if id, err := c.Decode(v); err == nil {
			return id
		}
	}
	id := uuid.NewString()
	c.Set(ctx, id)
	return id
}

func (c *Codec) Set(ctx *gin.Context, cartID string) {
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, c.Encode(cartID), maxAge, "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
