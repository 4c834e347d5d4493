package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jortega-dev/threads-shop/internal/cart"
	"github.com/jortega-dev/threads-shop/internal/httpx"
)

// The original client keeps the cart in localStorage and reconciles it
// through these two endpoints, so errors go back as a uniform
// {"status":"error","message":...} body with HTTP 200.
func apiError(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, StatusResponse{Status: "error", Message: msg})
}

func cartPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "cart.html", gin.H{
			"Authenticated": httpx.UserID(c) != "",
		})
	}
}

// syncCartHandler godoc
// @Summary Replace the server-side cart with the submitted lines
// @Accept json
// @Param cart body SyncCartRequest true "client cart"
// @Success 200 {object} StatusResponse
// @Router /api/sync-cart/ [post]
func syncCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := httpx.UserID(c)
		if uid == "" {
			apiError(c, "Invalid request")
			return
		}

		var req SyncCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apiError(c, "invalid cart payload")
			return
		}

		entries := make([]cart.Entry, 0, len(req.Cart))
		for _, it := range req.Cart {
			entries = append(entries, cart.Entry{ProductID: it.ID, Quantity: it.Quantity})
		}

		if err := repo.Sync(c.Request.Context(), uid, entries); err != nil {
			if errors.Is(err, cart.ErrProductNotFound) {
				apiError(c, err.Error())
				return
			}
			apiError(c, "could not sync cart")
			return
		}
		c.JSON(http.StatusOK, StatusResponse{Status: "success"})
	}
}

// getCartHandler godoc
// @Summary Return the current server-side cart joined against the catalog
// @Produce json
// @Success 200 {object} map[string][]cart.Line
// @Router /api/get-cart/ [get]
func getCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := httpx.UserID(c)
		if uid == "" {
			c.JSON(http.StatusOK, gin.H{"cart": []cart.Line{}})
			return
		}
		lines, err := repo.Lines(c.Request.Context(), uid)
		if err != nil {
			apiError(c, "could not load cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": lines})
	}
}
