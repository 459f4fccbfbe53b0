package payroll

import (
	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
	{
		payroll.GET("", h.GetAll)
		payroll.GET("/:id/summary", h.Summary)
		payroll.POST("/:id/mark-paid", middleware.Idempotency(rdb), h.MarkPaid)
		payroll.POST("/mark-paid", middleware.Idempotency(rdb), h.MarkPaidBulk)
	}
}
