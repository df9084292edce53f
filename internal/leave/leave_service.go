package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-leave/internal/balance"
	balanceerrors "go-leave/internal/balance/errors"
	"go-leave/internal/domain"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventLeaveCreated   = events.LeaveCreated
	EventLeaveApproved  = events.LeaveApproved
	EventLeaveRejected  = events.LeaveRejected
	EventLeaveCancelled = events.LeaveCancelled
)

// Authority decides who may approve whose leave.
type Authority interface {
	CanApprove(ctx context.Context, approverID, employeeID string) (bool, error)
	ApproverScope(ctx context.Context, approverID string) (domain.ApproverScope, error)
}

// Notifier receives lifecycle events after the owning transaction committed.
type Notifier interface {
	Notify(ctx context.Context, event string, req LeaveRequest) error
}

// WorkingDayCounter counts the days in a range that are not weekends or holidays.
type WorkingDayCounter interface {
	WorkingDays(ctx context.Context, start, end time.Time) (int, error)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, approverID, id string, req DecisionRequest) (LeaveResponse, error)
	Reject(ctx context.Context, approverID, id string, req DecisionRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	GetByID(ctx context.Context, actorID, id string) (LeaveResponse, error)
	ListForEmployee(ctx context.Context, employeeID string, query ListFilterQuery) ([]LeaveResponse, error)
	ListForApprover(ctx context.Context, approverID, status string) ([]LeaveResponse, error)
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(s *service) { s.loc = loc }
}

func WithCalendar(calendar WorkingDayCounter) Option {
	return func(s *service) { s.calendar = calendar }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger.Named("leave.service")
		}
	}
}

type service struct {
	db        *sql.DB
	repo      Repository
	balances  balance.Repository
	authority Authority
	notifier  Notifier
	calendar  WorkingDayCounter
	validator *Validator
	now       func() time.Time
	loc       *time.Location
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, balances balance.Repository, authority Authority, notifier Notifier, opts ...Option) Service {
	s := &service{
		db:        db,
		repo:      repo,
		balances:  balances,
		authority: authority,
		notifier:  notifier,
		now:       time.Now,
		loc:       time.UTC,
		logger:    zap.L().Named("leave.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.validator = NewValidator(balances, s.now, s.loc)
	return s
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create leave requested",
		zap.String("actor_id", actorID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	leaveTypeUUID, startDate, endDate, err := parseLeaveFields(req.LeaveTypeID, req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	days, err := s.validator.Validate(ctx, ValidationInput{
		EmployeeID:  actorID,
		LeaveTypeID: leaveTypeUUID.String(),
		StartDate:   startDate,
		EndDate:     endDate,
		IsNew:       true,
	})
	if err != nil {
		log.Warn("create leave validation failed", zap.String("actor_id", actorID), zap.Error(err))
		return LeaveResponse{}, err
	}

	workingDays, err := s.workingDays(ctx, *startDate, *endDate, days)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.LockEmployee(ctx, actorID); err != nil {
		log.Error("create leave employee lock failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	overlap, err := qtx.HasOverlappingPeriod(ctx, actorID, *startDate, *endDate, nil)
	if err != nil {
		log.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		log.Warn("create leave overlap detected",
			zap.String("employee_id", actorID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	now := s.now().UTC()
	l := &LeaveRequest{
		ID:                 uuid.New(),
		EmployeeID:         employeeUUID,
		LeaveTypeID:        leaveTypeUUID,
		StartDate:          *startDate,
		EndDate:            *endDate,
		TotalDays:          days,
		WorkingDays:        workingDays,
		Reason:             req.Reason,
		Status:             StatusPending,
		EmergencyContact:   req.EmergencyContact,
		AddressDuringLeave: req.AddressDuringLeave,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := qtx.Create(ctx, l); err != nil {
		log.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	log.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", actorID),
		zap.Int("total_days", days),
	)

	s.notify(ctx, EventLeaveCreated, *l)
	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update leave requested", zap.String("leave_id", id), zap.String("actor_id", actorID))

	if err := parseIDs(actorID, id); err != nil {
		return LeaveResponse{}, err
	}
	leaveTypeUUID, startDate, endDate, err := parseLeaveFields(req.LeaveTypeID, req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Employee row first, then the request row, same order as Create.
	if err := qtx.LockEmployee(ctx, actorID); err != nil {
		return LeaveResponse{}, err
	}
	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrNotRequestOwner
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.IllegalTransition(l.Status, ActionEdit)
	}

	days, err := s.validator.Validate(ctx, ValidationInput{
		EmployeeID:  actorID,
		LeaveTypeID: leaveTypeUUID.String(),
		StartDate:   startDate,
		EndDate:     endDate,
		IsNew:       false,
	})
	if err != nil {
		log.Warn("update leave validation failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, actorID, *startDate, *endDate, &id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	workingDays, err := s.workingDays(ctx, *startDate, *endDate, days)
	if err != nil {
		return LeaveResponse{}, err
	}

	l.LeaveTypeID = leaveTypeUUID
	l.StartDate = *startDate
	l.EndDate = *endDate
	l.TotalDays = days
	l.WorkingDays = workingDays
	l.Reason = req.Reason
	l.EmergencyContact = req.EmergencyContact
	l.AddressDuringLeave = req.AddressDuringLeave

	updated, err := qtx.UpdatePending(ctx, l)
	if err != nil {
		log.Error("update leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !updated {
		return LeaveResponse{}, s.staleTransition(ctx, qtx, id, ActionEdit)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	log.Info("update leave success", zap.String("leave_id", id), zap.Int("total_days", days))

	return mapToResponse(*l), nil
}

// Approve moves a PENDING request to APPROVED and charges its days against the
// balance in the same transaction.
func (s *service) Approve(ctx context.Context, approverID, id string, req DecisionRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("approve leave requested", zap.String("leave_id", id), zap.String("approver_id", approverID))

	if err := parseIDs(approverID, id); err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("approve leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	btx := s.balances.WithTx(tx)

	l, err := s.lockForDecision(ctx, qtx, approverID, id, ActionApprove)
	if err != nil {
		log.Warn("approve leave rejected", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	b, err := btx.LockByEmployeeAndType(ctx, l.EmployeeID.String(), l.LeaveTypeID.String())
	if err != nil {
		if errors.Is(err, balanceerrors.ErrBalanceNotFound) {
			return LeaveResponse{}, balanceerrors.Inconsistency(0, l.TotalDays)
		}
		log.Error("approve leave balance lock failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !balance.Sufficient(b, l.TotalDays) {
		log.Warn("approve leave balance no longer sufficient",
			zap.String("leave_id", id),
			zap.Int("remaining", b.RemainingDays),
			zap.Int("requested", l.TotalDays),
		)
		return LeaveResponse{}, balanceerrors.Inconsistency(b.RemainingDays, l.TotalDays)
	}

	decidedAt := s.now().UTC()
	swapped, err := qtx.TransitionStatus(ctx, StatusTransition{
		ID:           id,
		From:         StatusPending,
		To:           StatusApproved,
		ApprovedBy:   &approverID,
		DecidedAt:    &decidedAt,
		ManagerNotes: notesPtr(req.ManagerNotes),
	})
	if err != nil {
		log.Error("approve leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !swapped {
		return LeaveResponse{}, s.staleTransition(ctx, qtx, id, ActionApprove)
	}

	if err := balance.Deduct(ctx, btx, b, l.TotalDays); err != nil {
		log.Warn("approve leave balance deduction failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("approve leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	approver := uuid.MustParse(approverID)
	l.Status = StatusApproved
	l.ApprovedBy = &approver
	l.DecidedAt = &decidedAt
	l.ManagerNotes = notesPtr(req.ManagerNotes)
	log.Info("approve leave success",
		zap.String("leave_id", id),
		zap.String("approver_id", approverID),
		zap.Int("remaining_days", b.RemainingDays),
	)

	s.notify(ctx, EventLeaveApproved, *l)
	return mapToResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, approverID, id string, req DecisionRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("reject leave requested", zap.String("leave_id", id), zap.String("approver_id", approverID))

	if err := parseIDs(approverID, id); err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("reject leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.lockForDecision(ctx, qtx, approverID, id, ActionReject)
	if err != nil {
		log.Warn("reject leave rejected", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	decidedAt := s.now().UTC()
	swapped, err := qtx.TransitionStatus(ctx, StatusTransition{
		ID:           id,
		From:         StatusPending,
		To:           StatusRejected,
		ApprovedBy:   &approverID,
		DecidedAt:    &decidedAt,
		ManagerNotes: notesPtr(req.ManagerNotes),
	})
	if err != nil {
		log.Error("reject leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !swapped {
		return LeaveResponse{}, s.staleTransition(ctx, qtx, id, ActionReject)
	}

	if err := tx.Commit(); err != nil {
		log.Error("reject leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	approver := uuid.MustParse(approverID)
	l.Status = StatusRejected
	l.ApprovedBy = &approver
	l.DecidedAt = &decidedAt
	l.ManagerNotes = notesPtr(req.ManagerNotes)
	log.Info("reject leave success", zap.String("leave_id", id), zap.String("approver_id", approverID))

	s.notify(ctx, EventLeaveRejected, *l)
	return mapToResponse(*l), nil
}

// Cancel withdraws a request before it starts. Days of an approved request go back to the balance.
func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("cancel leave requested", zap.String("leave_id", id), zap.String("actor_id", actorID))

	if err := parseIDs(actorID, id); err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrNotRequestOwner
	}
	if !CanTransition(l.Status, StatusCancelled) {
		return LeaveResponse{}, leaveerrors.IllegalTransition(l.Status, ActionCancel)
	}
	if !dateOnly(l.StartDate).After(s.validator.Today()) {
		return LeaveResponse{}, leaveerrors.ErrCancelWindowClosed
	}

	from := l.Status
	swapped, err := qtx.TransitionStatus(ctx, StatusTransition{
		ID:            id,
		From:          from,
		To:            StatusCancelled,
		ClearDecision: true,
	})
	if err != nil {
		log.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !swapped {
		return LeaveResponse{}, s.staleTransition(ctx, qtx, id, ActionCancel)
	}

	if from == StatusApproved {
		btx := s.balances.WithTx(tx)
		if err := balance.Refund(ctx, btx, l.EmployeeID.String(), l.LeaveTypeID.String(), l.TotalDays); err != nil {
			log.Error("cancel leave balance refund failed", zap.String("leave_id", id), zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("cancel leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	l.Status = StatusCancelled
	l.ApprovedBy = nil
	l.DecidedAt = nil
	log.Info("cancel leave success",
		zap.String("leave_id", id),
		zap.String("previous_status", from),
	)

	s.notify(ctx, EventLeaveCancelled, *l)
	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := parseIDs(actorID, id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if l.EmployeeID.String() != actorID {
		return leaveerrors.ErrNotRequestOwner
	}
	if l.Status != StatusPending {
		return leaveerrors.IllegalTransition(l.Status, ActionDelete)
	}

	deleted, err := qtx.SoftDeletePending(ctx, id)
	if err != nil {
		log.Error("delete leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return s.staleTransition(ctx, qtx, id, ActionDelete)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("delete leave success", zap.String("leave_id", id))
	return nil
}

// GetByID returns the request to its owner or to anyone allowed to approve it.
// Everyone else gets not found.
func (s *service) GetByID(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	if err := parseIDs(actorID, id); err != nil {
		return LeaveResponse{}, err
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.EmployeeID.String() == actorID {
		return mapToResponse(*l), nil
	}

	ok, err := s.authority.CanApprove(ctx, actorID, l.EmployeeID.String())
	if err != nil {
		return LeaveResponse{}, err
	}
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(*l), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string, query ListFilterQuery) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}

	filter, err := parseListFilter(query)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindByEmployee(ctx, employeeID, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list leaves failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}

// ListForApprover returns requests of employees under the approver's authority,
// soonest start first. The approver's own requests are never included.
func (s *service) ListForApprover(ctx context.Context, approverID, status string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(approverID); err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}
	if status == "" {
		status = StatusPending
	}
	if !ValidStatus(status) {
		return nil, leaveerrors.ErrInvalidStatusFilter
	}

	scope, err := s.authority.ApproverScope(ctx, approverID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindForApprover(ctx, ApprovalQuery{
		All:               scope.All,
		EmployeeIDs:       scope.EmployeeIDs,
		ExcludeEmployeeID: approverID,
		Status:            status,
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list approvals failed", zap.String("approver_id", approverID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}

// lockForDecision loads the request for update and checks the approve/reject guard.
func (s *service) lockForDecision(ctx context.Context, qtx Repository, approverID, id, action string) (*LeaveRequest, error) {
	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Status != StatusPending {
		return nil, leaveerrors.IllegalTransition(l.Status, action)
	}
	if l.EmployeeID.String() == approverID {
		return nil, leaveerrors.ErrNoApprovalAuthority
	}

	ok, err := s.authority.CanApprove(ctx, approverID, l.EmployeeID.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, leaveerrors.ErrNoApprovalAuthority
	}
	return l, nil
}

// staleTransition reports the status that beat a compare-and-swap.
func (s *service) staleTransition(ctx context.Context, qtx Repository, id, action string) error {
	current, err := qtx.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return leaveerrors.IllegalTransition(current.Status, action)
}

func (s *service) workingDays(ctx context.Context, start, end time.Time, fallback int) (int, error) {
	if s.calendar == nil {
		return fallback, nil
	}
	return s.calendar.WorkingDays(ctx, start, end)
}

func (s *service) notify(ctx context.Context, event string, l LeaveRequest) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, event, l); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("leave notification failed",
			zap.String("event", event),
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
	}
}

func parseIDs(actorID, id string) error {
	if _, err := uuid.Parse(actorID); err != nil {
		return leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}
	return nil
}

func parseLeaveFields(leaveTypeID, start, end string) (uuid.UUID, *time.Time, *time.Time, error) {
	if leaveTypeID == "" {
		return uuid.Nil, nil, nil, leaveerrors.MissingField("leave_type_id")
	}
	leaveTypeUUID, err := uuid.Parse(leaveTypeID)
	if err != nil {
		return uuid.Nil, nil, nil, leaveerrors.ErrInvalidLeaveTypeID
	}
	startDate, err := parseDate("start_date", start)
	if err != nil {
		return uuid.Nil, nil, nil, err
	}
	endDate, err := parseDate("end_date", end)
	if err != nil {
		return uuid.Nil, nil, nil, err
	}
	return leaveTypeUUID, startDate, endDate, nil
}

func parseListFilter(q ListFilterQuery) (ListFilter, error) {
	filter := ListFilter{Status: q.Status}
	if q.Status != "" && !ValidStatus(q.Status) {
		return ListFilter{}, leaveerrors.ErrInvalidStatusFilter
	}
	if q.LeaveTypeID != "" {
		if _, err := uuid.Parse(q.LeaveTypeID); err != nil {
			return ListFilter{}, leaveerrors.ErrInvalidLeaveTypeID
		}
		filter.LeaveTypeID = q.LeaveTypeID
	}

	from, err := parseDate("from", q.From)
	if err != nil {
		return ListFilter{}, err
	}
	to, err := parseDate("to", q.To)
	if err != nil {
		return ListFilter{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return ListFilter{}, leaveerrors.InvalidRange()
	}
	filter.From, filter.To = from, to
	return filter, nil
}

func notesPtr(notes string) *string {
	if notes == "" {
		return nil
	}
	return &notes
}
