package leave

import "time"

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionCancel  = "cancel"
	ActionEdit    = "edit"
	ActionDelete  = "delete"
)

// transitions lists every status a request may move to. There is no way back to PENDING.
var transitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// StatusTransition is a compare-and-swap on the status column.
type StatusTransition struct {
	ID            string
	From          string
	To            string
	ApprovedBy    *string
	DecidedAt     *time.Time
	ManagerNotes  *string
	ClearDecision bool
}
