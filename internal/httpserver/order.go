package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func submitOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Submit(c.Request.Context(), c.Param("username"))
		if err != nil {
			respondLookupErr(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func orderHistoryHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.History(c.Request.Context(), c.Param("username"))
		if err != nil {
			respondLookupErr(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
