package app

import (
	"context"

	"go-leave/internal/auth"
	"go-leave/internal/auth/token"
	"go-leave/internal/authority"
	"go-leave/internal/balance"
	"go-leave/internal/calendar"
	"go-leave/internal/config"
	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/notification"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg *config.Config,
	deps *Infra,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(deps.GormDB)
	authRepo := auth.NewRepository(deps.GormDB)
	employeeRepo := employee.NewRepository(deps.GormDB)
	leaveTypeRepo := leavetype.NewRepository(deps.GormDB)
	balanceRepo := balance.NewRepository(deps.GormDB)
	holidayRepo := calendar.NewRepository(deps.GormDB)
	leaveRepo := leave.NewRepository(deps.GormDB)
	outboxRepo := kafka.NewOutboxRepository(deps.SQLDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(ctx); err != nil {
		return err
	}

	tokens := token.NewManager(cfg.JWT.Secret)
	authMW := middleware.AuthMiddleware(tokens)

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo, tokens, logger)
	employeeService := employee.NewService(employeeRepo, logger)
	leaveTypeService := leavetype.NewService(leaveTypeRepo, deps.Redis, logger)
	balanceService := balance.NewService(balanceRepo, logger)
	holidayService := calendar.NewService(holidayRepo, logger)
	leaveService := leave.NewService(
		deps.SQLDB,
		leaveRepo,
		balanceRepo,
		authority.NewProvider(employeeRepo, rbacService, logger),
		notification.NewOutboxNotifier(outboxRepo, logger),
		leave.WithLocation(cfg.Location()),
		leave.WithCalendar(holidayService),
		leave.WithLogger(logger),
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService, logger)
	balanceHandler := balance.NewHandler(balanceService, logger)
	holidayHandler := calendar.NewHandler(holidayService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		employee.RegisterRoutes(api, employeeHandler, rbacService, authMW, logger)
		leavetype.RegisterRoutes(api, leaveTypeHandler, rbacService, authMW, logger)
		balance.RegisterRoutes(api, balanceHandler, rbacService, authMW, logger)
		calendar.RegisterRoutes(api, holidayHandler, rbacService, authMW, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, authMW, deps.Redis, logger)
		rbac.RegisterRoutes(api, rbacHandler, authMW)
	}

	return nil
}
