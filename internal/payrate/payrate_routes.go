package payrate

import (
	"go-timeclock/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	payrates := r.Group("/payrates")
	payrates.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
	{
		payrates.GET("", h.GetRates)
		payrates.PUT("/employees/:id", h.SetEmployeeRate)
		payrates.PUT("/roles", h.SetRoleRate)
		payrates.POST("/roles/bulk", h.BulkSetRoleRate)
		payrates.PUT("/default", h.SetDefaultRate)
	}
}
