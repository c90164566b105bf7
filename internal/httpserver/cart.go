package httpserver

import (
	"net/http"

	cartsvc "webstore/internal/service/cart"

	"github.com/gin-gonic/gin"
)

func addToCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.ModifyInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		cart, err := svc.Add(c.Request.Context(), in)
		if err != nil {
			respondLookupErr(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeFromCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.ModifyInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		cart, err := svc.Remove(c.Request.Context(), in)
		if err != nil {
			respondLookupErr(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
