package calendar

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
	holidays := r.Group("/holidays")
	holidays.Use(authMW)
	holidays.Use(middleware.ContextLogger(logger))
	{
		holidays.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceHoliday, domain.ActionRead),
			handler.List,
		)
		holidays.GET("/working-days",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceHoliday, domain.ActionRead),
			handler.WorkingDays,
		)
		holidays.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceHoliday, domain.ActionManage),
			handler.Create,
		)
		holidays.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceHoliday, domain.ActionManage),
			handler.Delete,
		)
	}
}
