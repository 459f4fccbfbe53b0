package employee

import (
	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
	{
		employees.POST("", h.Create)
		employees.GET("", h.GetAll)
		employees.GET("/:id", h.GetByID)
		employees.PUT("/:id", h.Update)
		employees.PATCH("/:id/status", h.UpdateStatus)
		employees.PUT("/:id/schedule", h.UpdateSchedule)
		employees.DELETE("/:id", h.Delete)
	}
}
