package salarystructure

import (
	"github.com/madhavny/mavi-hrms-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	structures := r.Group("/salary-structures")
	structures.Use(middleware.AuthMiddleware())
	{
		structures.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), handler.GetAllByEmployee)
		structures.GET("/:id", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), handler.GetById)
		structures.POST("", middleware.RBACAuthorize(rbacService, "salary_structure", "create"), handler.Assign)
		structures.POST("/preview", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), handler.Preview)
		structures.PUT("/:id", middleware.RBACAuthorize(rbacService, "salary_structure", "update"), handler.Update)
		structures.DELETE("/:id", middleware.RBACAuthorize(rbacService, "salary_structure", "delete"), handler.Delete)
	}
}
