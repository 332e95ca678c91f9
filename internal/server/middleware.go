package server

import (
	"net/http"
	"time"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/session"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

// RouteAdminLogin is where a non-admin is sent from admin screens.
const RouteAdminLogin = "/admin-login"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// RequireAdmin rejects requests unless the stored session is an admin one.
func RequireAdmin(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.IsAdmin() {
			c.Next()
			return
		}
		utils.Warn("RequireAdmin: admin session required", map[string]any{"path": c.Request.URL.Path})
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"status":   http.StatusUnauthorized,
			"message":  auctionerrors.MsgNotAuthenticated,
			"error":    auctionerrors.ErrNotAuthenticated.Error(),
			"redirect": RouteAdminLogin,
		})
	}
}
