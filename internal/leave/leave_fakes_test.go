package leave_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"go-leave/internal/balance"
	balanceerrors "go-leave/internal/balance/errors"
	"go-leave/internal/domain"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"

	"github.com/google/uuid"
)

// memStore backs both fake repositories so status swaps and balance updates
// behave like the guarded SQL statements.
type memStore struct {
	mu       sync.Mutex
	leaves   map[string]leave.LeaveRequest
	balances map[string]balance.LeaveBalance
	overlap  bool
	lockErr  error
	calls    []string
}

func newMemStore() *memStore {
	return &memStore{
		leaves:   map[string]leave.LeaveRequest{},
		balances: map[string]balance.LeaveBalance{},
	}
}

func balanceKey(employeeID, leaveTypeID string) string {
	return employeeID + "|" + leaveTypeID
}

func (s *memStore) putBalance(employeeID, leaveTypeID uuid.UUID, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[balanceKey(employeeID.String(), leaveTypeID.String())] = balance.LeaveBalance{
		ID:              uuid.New(),
		EmployeeID:      employeeID,
		LeaveTypeID:     leaveTypeID,
		RemainingDays:   remaining,
		TotalEarnedDays: remaining,
	}
}

func (s *memStore) remaining(employeeID, leaveTypeID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[balanceKey(employeeID.String(), leaveTypeID.String())].RemainingDays
}

func (s *memStore) putLeave(l leave.LeaveRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaves[l.ID.String()] = l
}

func (s *memStore) getLeave(id uuid.UUID) (leave.LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leaves[id.String()]
	return l, ok
}

type fakeLeaveRepo struct{ s *memStore }

func (r *fakeLeaveRepo) WithTx(tx *sql.Tx) leave.Repository { return r }

func (r *fakeLeaveRepo) Create(ctx context.Context, l *leave.LeaveRequest) error {
	r.s.putLeave(*l)
	return nil
}

func (r *fakeLeaveRepo) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.leaves[id]
	if !ok {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	return &l, nil
}

func (r *fakeLeaveRepo) FindByIDForUpdate(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeLeaveRepo) FindByEmployee(ctx context.Context, employeeID string, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []leave.LeaveRequest
	for _, l := range r.s.leaves {
		if l.EmployeeID.String() != employeeID {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.LeaveTypeID != "" && l.LeaveTypeID.String() != filter.LeaveTypeID {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeLeaveRepo) FindForApprover(ctx context.Context, q leave.ApprovalQuery) ([]leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	allowed := map[string]bool{}
	for _, id := range q.EmployeeIDs {
		allowed[id] = true
	}
	var out []leave.LeaveRequest
	for _, l := range r.s.leaves {
		emp := l.EmployeeID.String()
		if l.Status != q.Status || emp == q.ExcludeEmployeeID {
			continue
		}
		if !q.All && !allowed[emp] {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *fakeLeaveRepo) LockEmployee(ctx context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls = append(r.s.calls, "lock:"+employeeID)
	return r.s.lockErr
}

func (r *fakeLeaveRepo) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls = append(r.s.calls, "overlap:"+employeeID)
	return r.s.overlap, nil
}

func (r *fakeLeaveRepo) UpdatePending(ctx context.Context, l *leave.LeaveRequest) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.leaves[l.ID.String()]
	if !ok || cur.Status != leave.StatusPending {
		return false, nil
	}
	r.s.leaves[l.ID.String()] = *l
	return true, nil
}

func (r *fakeLeaveRepo) TransitionStatus(ctx context.Context, t leave.StatusTransition) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.leaves[t.ID]
	if !ok || cur.Status != t.From {
		return false, nil
	}
	cur.Status = t.To
	if t.ClearDecision {
		cur.ApprovedBy = nil
		cur.DecidedAt = nil
	}
	if t.ApprovedBy != nil {
		id := uuid.MustParse(*t.ApprovedBy)
		cur.ApprovedBy = &id
	}
	if t.DecidedAt != nil {
		cur.DecidedAt = t.DecidedAt
	}
	if t.ManagerNotes != nil {
		cur.ManagerNotes = t.ManagerNotes
	}
	r.s.leaves[t.ID] = cur
	return true, nil
}

func (r *fakeLeaveRepo) SoftDeletePending(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.leaves[id]
	if !ok || cur.Status != leave.StatusPending {
		return false, nil
	}
	delete(r.s.leaves, id)
	return true, nil
}

type fakeBalanceRepo struct {
	s       *memStore
	findErr error
}

func (r *fakeBalanceRepo) WithTx(tx *sql.Tx) balance.Repository { return r }

func (r *fakeBalanceRepo) FindByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (*balance.LeaveBalance, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.balances[balanceKey(employeeID, leaveTypeID)]
	if !ok {
		return nil, balanceerrors.ErrBalanceNotFound
	}
	return &b, nil
}

func (r *fakeBalanceRepo) LockByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (*balance.LeaveBalance, error) {
	return r.FindByEmployeeAndType(ctx, employeeID, leaveTypeID)
}

func (r *fakeBalanceRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]balance.LeaveBalance, error) {
	return nil, nil
}

func (r *fakeBalanceRepo) FindAll(ctx context.Context) ([]balance.LeaveBalance, error) {
	return nil, nil
}

func (r *fakeBalanceRepo) DeductIfSufficient(ctx context.Context, employeeID, leaveTypeID string, days int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := balanceKey(employeeID, leaveTypeID)
	b, ok := r.s.balances[key]
	if !ok || b.RemainingDays < days {
		return false, nil
	}
	b.RemainingDays -= days
	r.s.balances[key] = b
	return true, nil
}

func (r *fakeBalanceRepo) Restore(ctx context.Context, employeeID, leaveTypeID string, days int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := balanceKey(employeeID, leaveTypeID)
	b, ok := r.s.balances[key]
	if !ok {
		return balanceerrors.ErrBalanceNotFound
	}
	b.RemainingDays += days
	r.s.balances[key] = b
	return nil
}

func (r *fakeBalanceRepo) Accrue(ctx context.Context, employeeID, leaveTypeID string, days int) error {
	return nil
}

func (r *fakeBalanceRepo) Upsert(ctx context.Context, b *balance.LeaveBalance) error { return nil }

func (r *fakeBalanceRepo) Save(ctx context.Context, b *balance.LeaveBalance) error { return nil }

// fakeAuthority maps approver id to the employees they manage.
type fakeAuthority struct {
	reports map[string][]string
	all     map[string]bool
}

func (a *fakeAuthority) CanApprove(ctx context.Context, approverID, employeeID string) (bool, error) {
	if approverID == employeeID {
		return false, nil
	}
	if a.all[approverID] {
		return true, nil
	}
	for _, id := range a.reports[approverID] {
		if id == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func (a *fakeAuthority) ApproverScope(ctx context.Context, approverID string) (domain.ApproverScope, error) {
	return domain.ApproverScope{All: a.all[approverID], EmployeeIDs: a.reports[approverID]}, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (n *fakeNotifier) Notify(ctx context.Context, event string, req leave.LeaveRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.err
}

func (n *fakeNotifier) count(event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, e := range n.events {
		if e == event {
			c++
		}
	}
	return c
}
