package notification

import (
	"context"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/leave"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

const aggregateLeaveRequest = "leave_request"

// OutboxNotifier records lifecycle events in the outbox for the worker to publish.
type OutboxNotifier struct {
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewOutboxNotifier(outbox kafka.OutboxRepository, logger ...*zap.Logger) *OutboxNotifier {
	l := zap.L().Named("notification.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.outbox")
	}
	return &OutboxNotifier{outbox: outbox, now: time.Now, logger: l}
}

func (n *OutboxNotifier) Notify(ctx context.Context, event string, req leave.LeaveRequest) error {
	payload := BuildLeaveEvent(event, req, n.now())

	outboxEvent, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		aggregateLeaveRequest,
		req.ID.String(),
		event,
		events.LeaveLifecycleTopic,
		payload,
	)
	if err != nil {
		return err
	}

	if err := n.outbox.Create(ctx, outboxEvent); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, n.logger).Debug("leave event queued",
		zap.String("event_type", event),
		zap.String("leave_id", req.ID.String()),
		zap.String("outbox_id", outboxEvent.ID),
	)
	return nil
}

func BuildLeaveEvent(event string, req leave.LeaveRequest, at time.Time) events.LeaveEvent {
	ev := events.LeaveEvent{
		EventType:   event,
		LeaveID:     req.ID.String(),
		EmployeeID:  req.EmployeeID.String(),
		LeaveTypeID: req.LeaveTypeID.String(),
		StartDate:   req.StartDate.Format(time.DateOnly),
		EndDate:     req.EndDate.Format(time.DateOnly),
		TotalDays:   req.TotalDays,
		Status:      req.Status,
		OccurredAt:  at.UTC(),
	}
	if req.ApprovedBy != nil {
		ev.DecidedBy = req.ApprovedBy.String()
	}
	if req.ManagerNotes != nil {
		ev.ManagerNotes = *req.ManagerNotes
	}
	return ev
}
