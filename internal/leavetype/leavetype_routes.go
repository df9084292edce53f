package leavetype

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
	types := r.Group("/leave-types")
	types.Use(authMW)
	types.Use(middleware.ContextLogger(logger))
	{
		types.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeaveType, domain.ActionRead),
			handler.GetAll,
		)
		types.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeaveType, domain.ActionRead),
			handler.GetByID,
		)
		types.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeaveType, domain.ActionManage),
			handler.Create,
		)
		types.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeaveType, domain.ActionManage),
			handler.Update,
		)
		types.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeaveType, domain.ActionManage),
			handler.Delete,
		)
	}
}
