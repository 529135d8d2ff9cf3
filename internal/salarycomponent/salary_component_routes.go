package salarycomponent

import (
	"github.com/madhavny/mavi-hrms-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	components := r.Group("/salary-components")
	components.Use(middleware.AuthMiddleware())
	{
		components.GET("", middleware.RBACAuthorize(rbacService, "salary_component", "read"), handler.GetAll)
		components.GET("/:id", middleware.RBACAuthorize(rbacService, "salary_component", "read"), handler.GetById)
		components.POST("", middleware.RBACAuthorize(rbacService, "salary_component", "create"), handler.Create)
		components.PUT("/:id", middleware.RBACAuthorize(rbacService, "salary_component", "update"), handler.Update)
		components.DELETE("/:id", middleware.RBACAuthorize(rbacService, "salary_component", "delete"), handler.Delete)
	}
}
