package leave

import "time"

const dateLayout = "2006-01-02"

// Dates are plain strings so missing values reach the validator instead of failing binding.
type CreateLeaveRequest struct {
	LeaveTypeID        string `json:"leave_type_id"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Reason             string `json:"reason" binding:"max=1000"`
	EmergencyContact   string `json:"emergency_contact" binding:"max=100"`
	AddressDuringLeave string `json:"address_during_leave" binding:"max=500"`
}

type UpdateLeaveRequest struct {
	LeaveTypeID        string `json:"leave_type_id"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Reason             string `json:"reason" binding:"max=1000"`
	EmergencyContact   string `json:"emergency_contact" binding:"max=100"`
	AddressDuringLeave string `json:"address_during_leave" binding:"max=500"`
}

type DecisionRequest struct {
	ManagerNotes string `json:"manager_notes" binding:"max=1000"`
}

type ListFilterQuery struct {
	Status      string `form:"status"`
	LeaveTypeID string `form:"leave_type_id"`
	From        string `form:"from"`
	To          string `form:"to"`
}

type LeaveResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	LeaveTypeID        string  `json:"leave_type_id"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	TotalDays          int     `json:"total_days"`
	WorkingDays        int     `json:"working_days"`
	Reason             string  `json:"reason"`
	Status             string  `json:"status"`
	ApprovedBy         *string `json:"approved_by,omitempty"`
	DecidedAt          *string `json:"decided_at,omitempty"`
	ManagerNotes       *string `json:"manager_notes,omitempty"`
	EmergencyContact   string  `json:"emergency_contact,omitempty"`
	AddressDuringLeave string  `json:"address_during_leave,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:                 l.ID.String(),
		EmployeeID:         l.EmployeeID.String(),
		LeaveTypeID:        l.LeaveTypeID.String(),
		StartDate:          l.StartDate.Format(dateLayout),
		EndDate:            l.EndDate.Format(dateLayout),
		TotalDays:          l.TotalDays,
		WorkingDays:        l.WorkingDays,
		Reason:             l.Reason,
		Status:             l.Status,
		ManagerNotes:       l.ManagerNotes,
		EmergencyContact:   l.EmergencyContact,
		AddressDuringLeave: l.AddressDuringLeave,
		CreatedAt:          l.CreatedAt.Format(time.RFC3339),
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(items []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(items))
	for i, l := range items {
		resp[i] = mapToResponse(l)
	}
	return resp
}
