package app

import (
	"context"
	"time"

	"go-leave/internal/accrual"
	"go-leave/internal/balance"
	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/messaging/kafka/producer"
	"go-leave/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes the outbox to Kafka and runs the monthly accrual schedule.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	deps, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(deps.SQLDB)

	accrualService := accrual.NewService(
		deps.SQLDB,
		accrual.NewRepository(deps.GormDB),
		balance.NewRepository(deps.GormDB),
		leavetype.NewRepository(deps.GormDB),
		logger,
	)
	scheduler, err := accrual.NewScheduler(accrualService, cfg.Worker.AccrualSchedule, cfg.Location(), logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		producer.WorkerConfig{
			PollInterval: cfg.Worker.OutboxPollInterval,
			BatchSize:    cfg.Worker.OutboxBatchSize,
		},
	)
	scheduler.Start()

	sig := bootstrap.WaitForSignal()
	log.Info("worker shutting down", zap.String("signal", sig))
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	scheduler.Stop(stopCtx)

	return nil
}
