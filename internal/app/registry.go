package app

import (
	"database/sql"

	"go-timeclock/internal/attendance"
	"go-timeclock/internal/auth"
	"go-timeclock/internal/dashboard"
	"go-timeclock/internal/employee"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/middleware"
	"go-timeclock/internal/payrate"
	"go-timeclock/internal/payroll"
	"go-timeclock/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	payrateRepo := payrate.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	employeeService := employee.NewService(db, employeeRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo, payrollRepo)
	timesheetService := timesheet.NewService(attendanceRepo)
	payrateService := payrate.NewService(db, payrateRepo, rdb)
	payrollService := payroll.NewService(db, payrollRepo, payrateService, outboxRepo)
	dashboardService := dashboard.NewService(
		employeeRepo,
		attendanceRepo,
		timesheetService,
		payrateService,
		payrollService,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payrateHandler := payrate.NewHandler(payrateService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		payrate.RegisterRoutes(api, payrateHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	return nil
}
