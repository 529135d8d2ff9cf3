package payslip

import (
	"github.com/madhavny/mavi-hrms-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	// Generate itu mahal; batasi per pengguna, bukan per IP.
	generateLimiter := middleware.RateLimitByUser(rate.Limit(1), 5)

	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetAll)
		payslips.GET("/summary", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.Summary)
		payslips.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetEmployeePayslip)
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetById)
		payslips.POST("/generate",
			middleware.RBACAuthorize(rbacService, "payslip", "create"),
			generateLimiter,
			handler.Generate,
		)
		// Bulk generate dilindungi idempotency key di Redis supaya retry
		// klien tidak menjalankan batch dua kali.
		payslips.POST("/bulk-generate",
			middleware.RBACAuthorize(rbacService, "payslip", "create"),
			generateLimiter,
			middleware.Idempotency(rdb),
			handler.BulkGenerate,
		)
		payslips.PATCH("/bulk-status", middleware.RBACAuthorize(rbacService, "payslip", "update"), handler.BulkUpdateStatus)
		payslips.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "payslip", "update"), handler.UpdateStatus)
		payslips.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payslip", "delete"), handler.Delete)
	}
}
