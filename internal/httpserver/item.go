package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func listItemsHandler(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func findItemByIDHandler(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}

		it, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			respondLookupErr(c, err)
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

func findItemsByNameHandler(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.GetByName(c.Request.Context(), c.Param("name"))
		if err != nil {
			respondLookupErr(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
