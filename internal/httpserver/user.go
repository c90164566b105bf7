package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"webstore/internal/domain"
	usersvc "webstore/internal/service/user"

	"github.com/gin-gonic/gin"
)

func createUserHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		u, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, usersvc.ErrUsernameRequired),
				errors.Is(err, usersvc.ErrPasswordPolicy),
				errors.Is(err, domain.ErrAlreadyExists):
				c.Status(http.StatusBadRequest)
			default:
				c.Status(http.StatusInternalServerError)
			}
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func findUserByIDHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			// an unparseable id cannot name an existing user
			c.Status(http.StatusNotFound)
			return
		}

		u, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			respondLookupErr(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func findUserByNameHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetByUsername(c.Request.Context(), c.Param("username"))
		if err != nil {
			respondLookupErr(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func respondLookupErr(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusInternalServerError)
}
