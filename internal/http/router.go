package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/cartcookie"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/handlers"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/middleware"
)

// WebDeps collects everything the storefront API router needs.
type WebDeps struct {
	Logger    *slog.Logger
	Cookie    *cartcookie.Codec
	Catalog   *handlers.Catalog
	Cart      *handlers.CartHandler
	Checkout  *handlers.Checkout
	Orders    *handlers.Orders
	Profile   *handlers.Profile
	Reviews   *handlers.Reviews
	Wishlist  *handlers.Wishlist
	Addresses *handlers.Addresses
}

func NewWebRouter(d WebDeps) *gin.Engine {
	r := base(d.Logger)
	r.GET("/healthz", handlers.Health)

	api := r.Group("/api")
	{
		api.GET("/collections", d.Catalog.Collections)
		api.GET("/collections/:handle/products", d.Catalog.ProductsByCollection)
		api.GET("/products", d.Catalog.Products)
		api.GET("/products/:handle", d.Catalog.ProductByHandle)
		api.GET("/products/:handle/reviews", d.Reviews.ListByProduct)

		api.GET("/cart", d.Cart.Get)
		api.POST("/cart/items", d.Cart.AddItem)
		api.PATCH("/cart/items/:variantID", d.Cart.UpdateItem)
		api.DELETE("/cart/items/:variantID", d.Cart.RemoveItem)
		api.DELETE("/cart", d.Cart.Clear)

		api.POST("/checkout", d.Checkout.Create)
	}

	// everything below needs the auth proxy's identity headers
	account := api.Group("", middleware.RequireUser())
	{
		account.GET("/orders", d.Orders.List)
		account.GET("/orders/:id", d.Orders.Get)

		account.GET("/profile", d.Profile.Get)
		account.PATCH("/profile", d.Profile.Update)

		account.POST("/products/:handle/reviews", d.Reviews.Create)
		account.DELETE("/reviews/:id", d.Reviews.Delete)

		account.GET("/wishlist", d.Wishlist.List)
		account.POST("/wishlist", d.Wishlist.Toggle)
		account.GET("/wishlist/:productID", d.Wishlist.Contains)
		account.DELETE("/wishlist/:productID", d.Wishlist.Remove)

		account.GET("/addresses", d.Addresses.List)
		account.POST("/addresses", d.Addresses.Create)
		account.PUT("/addresses/:id", d.Addresses.Update)
		account.DELETE("/addresses/:id", d.Addresses.Delete)
	}

	return r
}

func NewWebhookRouter(logger *slog.Logger, wh *handlers.Webhooks) *gin.Engine {
	r := base(logger)
	r.GET("/healthz", handlers.Health)
	r.POST("/webhooks/shopify/orders", wh.OrderEvent)
	return r
}

func NewNotifyRouter(logger *slog.Logger, n *handlers.Notify) *gin.Engine {
	r := base(logger)
	r.GET("/healthz", handlers.Health)
	r.POST("/send-order-email", n.Send)
	return r
}

func base(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(logger),
		middleware.Identity(),
	)
	return r
}
