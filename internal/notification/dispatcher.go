package notification

import (
	"context"
	"errors"

	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/events"
	"go-leave/internal/leavetype"

	"go.uber.org/zap"
)

type EmployeeLookup interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

type LeaveTypeLookup interface {
	GetByID(ctx context.Context, id string) (leavetype.LeaveTypeResponse, error)
}

// Dispatcher emails the manager about new requests and the owner about decisions.
type Dispatcher struct {
	directory  EmployeeLookup
	leaveTypes LeaveTypeLookup
	sender     Sender
	logger     *zap.Logger
}

func NewDispatcher(directory EmployeeLookup, leaveTypes LeaveTypeLookup, sender Sender, logger ...*zap.Logger) *Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	return &Dispatcher{directory: directory, leaveTypes: leaveTypes, sender: sender, logger: l}
}

func (d *Dispatcher) Handle(ctx context.Context, event events.LeaveEvent) error {
	owner, err := d.directory.FindByID(ctx, event.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			d.logger.Warn("leave owner not found, dropping notification", zap.String("employee_id", event.EmployeeID))
			return nil
		}
		return err
	}

	to := Recipient{Email: owner.Email, Name: owner.FullName}
	if event.EventType == events.LeaveCreated {
		if owner.ManagerID == nil {
			d.logger.Debug("no manager to notify", zap.String("employee_id", event.EmployeeID))
			return nil
		}
		manager, err := d.directory.FindByID(ctx, owner.ManagerID.String())
		if err != nil {
			if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
				return nil
			}
			return err
		}
		to = Recipient{Email: manager.Email, Name: manager.FullName}
	}

	details := LeaveDetails{Event: event, EmployeeName: owner.FullName}
	if d.leaveTypes != nil {
		if lt, err := d.leaveTypes.GetByID(ctx, event.LeaveTypeID); err == nil {
			details.LeaveTypeName = lt.Name
		}
	}

	msg, err := Compose(to, details)
	if err != nil {
		return err
	}
	return d.sender.Send(ctx, msg)
}
