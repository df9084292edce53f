package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type Message struct {
	ToEmail   string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

//go:generate mockgen -source=email_sender.go -destination=mock/email_sender_mock.go -package=mock
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.ToEmail)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// LogSender writes messages to the log. Used when no SendGrid key is configured.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger ...*zap.Logger) *LogSender {
	l := zap.L().Named("notification.mail")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.mail")
	}
	return &LogSender{logger: l}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("email",
		zap.String("to", msg.ToEmail),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.PlainText),
	)
	return nil
}

func NewSender(apiKey, fromEmail, fromName string, logger *zap.Logger) Sender {
	if apiKey == "" {
		return NewLogSender(logger)
	}
	return NewSendGridSender(apiKey, fromEmail, fromName)
}
