package leave

import (
	"go-leave/internal/domain"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	idempotent := middleware.Idempotency(rdb, logger)

	leaves := r.Group("/leaves")
	leaves.Use(authMW)
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionRead),
			handler.ListMine,
		)
		leaves.GET("/approvals",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove),
			handler.ListApprovals,
		)
		leaves.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionRead),
			handler.GetByID,
		)
		leaves.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate),
			idempotent,
			handler.Create,
		)
		leaves.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate),
			handler.Update,
		)
		leaves.POST("/:id/cancel",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate),
			handler.Cancel,
		)
		leaves.POST("/:id/approve",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove),
			idempotent,
			handler.Approve,
		)
		leaves.POST("/:id/reject",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove),
			idempotent,
			handler.Reject,
		)
		leaves.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate),
			handler.Delete,
		)
	}
}
