package employee

import (
	"go-leave/internal/domain"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(authMW)
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.Me,
		)
		employees.GET("/me/reports",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove),
			handler.MyReports,
		)
	}
}
