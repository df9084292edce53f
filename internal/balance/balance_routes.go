package balance

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
	balances := r.Group("/balances")
	balances.Use(authMW)
	balances.Use(middleware.ContextLogger(logger))
	{
		balances.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceBalance, domain.ActionRead),
			handler.Mine,
		)
		balances.GET("/employees/:employee_id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceBalance, domain.ActionManage),
			handler.ForEmployee,
		)
		balances.PUT("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceBalance, domain.ActionManage),
			handler.Reset,
		)
	}
}
