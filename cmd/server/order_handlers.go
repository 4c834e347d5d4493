package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jortega-dev/threads-shop/internal/httpx"
	"github.com/jortega-dev/threads-shop/internal/order"
)

func checkoutPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "checkout.html", gin.H{
			"Authenticated": true,
		})
	}
}

// placeOrderHandler godoc
// @Summary Convert the submitted cart lines into a confirmed order
// @Accept x-www-form-urlencoded
// @Param cart_data formData string true "JSON array of {id, price, quantity}"
// @Success 200 {object} StatusResponse
// @Router /place-order/ [post]
func placeOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := httpx.UserID(c)

		cartData := c.PostForm("cart_data")
		if cartData == "" {
			apiError(c, "No cart data")
			return
		}

		var lines []PlaceOrderItem
		if err := json.Unmarshal([]byte(cartData), &lines); err != nil {
			apiError(c, "invalid cart data")
			return
		}
		if len(lines) == 0 {
			apiError(c, "Cart is empty")
			return
		}

		// The total is computed from the prices the client submitted, not
		// from the catalog. That mirrors the original checkout contract.
		total := decimal.Zero
		items := make([]order.Item, 0, len(lines))
		for _, l := range lines {
			price, err := decimal.NewFromString(l.Price.String())
			if err != nil {
				apiError(c, "invalid cart data")
				return
			}
			total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
			items = append(items, order.Item{
				ID:        uuid.NewString(),
				ProductID: l.ID,
				Quantity:  l.Quantity,
			})
		}

		o := &order.Order{
			ID:     uuid.NewString(),
			UserID: uid,
			Total:  total.StringFixed(2),
			Status: order.StatusConfirmed,
		}
		for i := range items {
			items[i].OrderID = o.ID
		}

		if err := repo.Place(c.Request.Context(), o, items); err != nil {
			if errors.Is(err, order.ErrProductNotFound) {
				apiError(c, err.Error())
				return
			}
			apiError(c, "could not place order")
			return
		}

		c.JSON(http.StatusOK, StatusResponse{
			Status:  "success",
			OrderID: o.ID,
			Message: "Order placed successfully!",
		})
	}
}

type orderView struct {
	order.Order
	Lines []order.Line
}

func ordersPage(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := httpx.UserID(c)

		orders, err := repo.ListByUser(c.Request.Context(), uid)
		if err != nil {
			c.String(http.StatusInternalServerError, "could not load orders")
			return
		}

		views := make([]orderView, 0, len(orders))
		for _, o := range orders {
			lines, err := repo.GetLines(c.Request.Context(), o.ID)
			if err != nil {
				c.String(http.StatusInternalServerError, "could not load orders")
				return
			}
			views = append(views, orderView{Order: o, Lines: lines})
		}

		c.HTML(http.StatusOK, "orders.html", gin.H{
			"Orders":        views,
			"Authenticated": true,
		})
	}
}
