package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/madhavny/mavi-hrms-sub002/internal/attendance"
	"github.com/madhavny/mavi-hrms-sub002/internal/audit"
	"github.com/madhavny/mavi-hrms-sub002/internal/employee"
	"github.com/madhavny/mavi-hrms-sub002/internal/leave"
	"github.com/madhavny/mavi-hrms-sub002/internal/messaging/kafka"
	"github.com/madhavny/mavi-hrms-sub002/internal/middleware"
	"github.com/madhavny/mavi-hrms-sub002/internal/payperiod"
	"github.com/madhavny/mavi-hrms-sub002/internal/payslip"
	"github.com/madhavny/mavi-hrms-sub002/internal/rbac"
	"github.com/madhavny/mavi-hrms-sub002/internal/rbac/infra"
	"github.com/madhavny/mavi-hrms-sub002/internal/salarycomponent"
	"github.com/madhavny/mavi-hrms-sub002/internal/salarystructure"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	componentRepo := salarycomponent.NewRepository(gormDB)
	structureRepo := salarystructure.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Audit ---
	// Setiap mutasi payroll direkam lewat outbox (topic hr.audit.v1);
	// kegagalan recorder dicatat, tidak pernah memblokir mutasi utama.
	recorder := audit.NewOutboxRecorder(outboxRepo, zap.L())

	// --- Period Resolver ---
	resolver, err := payperiod.NewResolverFromName(os.Getenv("PAYROLL_TIMEZONE"))
	if err != nil {
		return err
	}

	// --- Services ---
	componentService := salarycomponent.NewService(gormDB, componentRepo, recorder)
	structureService := salarystructure.NewService(gormDB, structureRepo, componentRepo, employeeRepo, recorder)
	payslipService := payslip.NewService(
		gormDB,
		payslipRepo,
		structureRepo,
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		outboxRepo,
		resolver,
		recorder,
		rdb,
	)

	// --- Handlers ---
	componentHandler := salarycomponent.NewHandler(componentService)
	structureHandler := salarystructure.NewHandler(structureService)
	payslipHandler := payslip.NewHandlerWithRedis(payslipService, rdb)

	// --- Global Middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		salarycomponent.RegisterRoutes(api, componentHandler, rbacService)
		salarystructure.RegisterRoutes(api, structureHandler, rbacService)
		payslip.RegisterRoutes(api, payslipHandler, rbacService, rdb)
	}

	return nil
}
