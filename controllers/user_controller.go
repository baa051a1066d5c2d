package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dozy-jeff/sellable/store"
)

func Me(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		u, err := users.UserByID(c.Request.Context(), uid)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
