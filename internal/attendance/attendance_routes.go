package attendance

import (
	"time"

	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/check-in", middleware.RateLimitByEmployee(rate.Every(time.Second), 5), h.CheckIn)
		attendances.POST("/check-out", middleware.RateLimitByEmployee(rate.Every(time.Second), 5), h.CheckOut)
		attendances.GET("", middleware.RoleMiddleware("ADMIN"), h.GetAll)
	}
}
