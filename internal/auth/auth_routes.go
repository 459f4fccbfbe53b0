package auth

import (
	"time"

	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitByIP(rate.Every(time.Second), 10))
	{
		authGroup.POST("/worker-login", h.WorkerLogin)
		authGroup.POST("/admin-login", h.AdminLogin)
	}
}
