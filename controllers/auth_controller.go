package controllers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dozy-jeff/sellable/config"
	"github.com/Dozy-jeff/sellable/models"
	"github.com/Dozy-jeff/sellable/store"
	"github.com/Dozy-jeff/sellable/utils"
)

func hash(pw string) string {
	h := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(h[:])
}

func Register(cfg config.Config, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if req.Confirm != "" && req.Password != req.Confirm {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password mismatch"})
			return
		}
		role := req.Role
		if role != "buyer" {
			role = "seller"
		}
		id, err := users.CreateUser(c.Request.Context(), req.Name, req.Email, hash(req.Password), role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		token, err := generateToken(cfg, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func Login(cfg config.Config, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		u, err := users.UserByEmail(c.Request.Context(), req.Email)
		if err != nil || u.PasswordHash != hash(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, err := generateToken(cfg, u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "role": u.Role})
	}
}

func generateToken(cfg config.Config, uid int64) (string, error) {
	return utils.GenerateJWT(cfg.JWTSecret, uid, 24*time.Hour)
}
