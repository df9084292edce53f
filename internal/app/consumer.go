package app

import (
	"context"

	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/employee"
	"go-leave/internal/events"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/messaging/kafka/consumer"
	"go-leave/internal/notification"
	"go-leave/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer turns leave lifecycle events into emails.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	deps, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	deps.Redis = rdb

	sender := notification.NewSender(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName, logger)
	if cfg.Mail.SendGridAPIKey == "" {
		log.Warn("SENDGRID_API_KEY not set, emails are written to the log")
	}

	dispatcher := notification.NewDispatcher(
		employee.NewRepository(deps.GormDB),
		leavetype.NewService(leavetype.NewRepository(deps.GormDB), deps.Redis, logger),
		sender,
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.LeaveLifecycleTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLeaveLifecycle(ctx, reader, dispatcher,
		kafka.NewOutboxRepository(deps.SQLDB),
		logger,
		consumer.Config{},
	)

	sig := bootstrap.WaitForSignal()
	log.Info("consumer shutting down", zap.String("signal", sig))
	cancel()

	return nil
}
