package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	LeaveCreated   = "leave_created"
	LeaveApproved  = "leave_approved"
	LeaveRejected  = "leave_rejected"
	LeaveCancelled = "leave_cancelled"
)

type LeaveEvent struct {
	EventType    string    `json:"event_type"`
	LeaveID      string    `json:"leave_id"`
	EmployeeID   string    `json:"employee_id"`
	LeaveTypeID  string    `json:"leave_type_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	TotalDays    int       `json:"total_days"`
	Status       string    `json:"status"`
	DecidedBy    string    `json:"decided_by,omitempty"`
	ManagerNotes string    `json:"manager_notes,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func IsLeaveEvent(eventType string) bool {
	switch eventType {
	case LeaveCreated, LeaveApproved, LeaveRejected, LeaveCancelled:
		return true
	}
	return false
}
