package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/dshu-atelier/storefront/internal/handlers"
)

type Deps struct {
	AuthHandler     *handlers.AuthHandler
	CartHandler     *handlers.CartHandler
	CatalogHandler  *handlers.CatalogHandler
	CheckoutHandler *handlers.CheckoutHandler
	ModalHandler    *handlers.ModalHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)
	v1.GET("/session", d.AuthHandler.Session)

	products := v1.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)
	v1.GET("/categories", d.CatalogHandler.GetCategories)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)
	cart.PATCH("/:id", d.CartHandler.SetQuantity)
	cart.POST("/toggle", d.CartHandler.ToggleCart)

	checkout := v1.Group("/checkout")
	checkout.POST("", d.CheckoutHandler.Submit)
	checkout.GET("", d.CheckoutHandler.Status)
	checkout.POST("/reset", d.CheckoutHandler.Reset)

	modal := v1.Group("/modal")
	modal.GET("", d.ModalHandler.Get)
	modal.POST("/auth", d.ModalHandler.OpenAuth)
	modal.POST("/checkout", d.ModalHandler.OpenCheckout)
	modal.POST("/product/:id", d.ModalHandler.OpenProduct)
	modal.DELETE("", d.ModalHandler.Close)
}
