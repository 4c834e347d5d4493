package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jortega-dev/threads-shop/docs"
	"github.com/jortega-dev/threads-shop/internal/account"
	"github.com/jortega-dev/threads-shop/internal/cart"
	"github.com/jortega-dev/threads-shop/internal/catalog"
	"github.com/jortega-dev/threads-shop/internal/config"
	"github.com/jortega-dev/threads-shop/internal/httpx"
	"github.com/jortega-dev/threads-shop/internal/order"
)

func buildRouter(cfg config.Config, products catalog.Repository, carts cart.Repository, orders order.Repository, users account.Repository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.Session(cfg.JWTSecret))
	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/static", "web/static")

	r.GET("/", indexPage(products, users))
	r.GET("/product/:id", productPage(products))
	r.GET("/cart/", cartPage())

	r.GET("/register/", registerPage())
	r.POST("/register/", registerHandler(users, cfg.JWTSecret))
	r.GET("/login/", loginPage())
	r.POST("/login/", loginHandler(users, cfg.JWTSecret))
	r.GET("/logout/", logoutHandler())

	api := r.Group("/api")
	api.POST("/sync-cart/", syncCartHandler(carts))
	api.GET("/get-cart/", getCartHandler(carts))

	authed := r.Group("/", httpx.RequireUser())
	authed.GET("/checkout/", checkoutPage())
	authed.POST("/checkout/", checkoutPage())
	authed.POST("/place-order/", placeOrderHandler(orders))
	authed.GET("/orders/", ordersPage(orders))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}
