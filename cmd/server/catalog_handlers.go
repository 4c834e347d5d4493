package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jortega-dev/threads-shop/internal/account"
	"github.com/jortega-dev/threads-shop/internal/catalog"
	"github.com/jortega-dev/threads-shop/internal/httpx"
)

func indexPage(repo catalog.Repository, users account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repo.List(c.Request.Context())
		if err != nil {
			c.String(http.StatusInternalServerError, "could not load catalog")
			return
		}
		username := ""
		if uid := httpx.UserID(c); uid != "" {
			if u, err := users.GetByID(c.Request.Context(), uid); err == nil {
				username = u.Username
			}
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Products":      products,
			"Authenticated": httpx.UserID(c) != "",
			"Username":      username,
			"Message":       takeFlash(c),
		})
	}
}

func productPage(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.String(http.StatusNotFound, "product not found")
				return
			}
			c.String(http.StatusInternalServerError, "could not load product")
			return
		}
		c.HTML(http.StatusOK, "product.html", gin.H{
			"Product":       p,
			"Authenticated": httpx.UserID(c) != "",
		})
	}
}
