package balance

import "time"

type ResetBalanceRequest struct {
	EmployeeID         string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID        string `json:"leave_type_id" binding:"required,uuid"`
	RemainingDays      int    `json:"remaining_days" binding:"min=0"`
	CarriedForwardDays int    `json:"carried_forward_days" binding:"min=0"`
	TotalEarnedDays    int    `json:"total_earned_days" binding:"min=0"`
}

type BalanceResponse struct {
	ID                 string    `json:"id"`
	EmployeeID         string    `json:"employee_id"`
	LeaveTypeID        string    `json:"leave_type_id"`
	RemainingDays      int       `json:"remaining_days"`
	CarriedForwardDays int       `json:"carried_forward_days"`
	TotalEarnedDays    int       `json:"total_earned_days"`
	LastUpdated        time.Time `json:"last_updated"`
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:                 b.ID.String(),
		EmployeeID:         b.EmployeeID.String(),
		LeaveTypeID:        b.LeaveTypeID.String(),
		RemainingDays:      b.RemainingDays,
		CarriedForwardDays: b.CarriedForwardDays,
		TotalEarnedDays:    b.TotalEarnedDays,
		LastUpdated:        b.LastUpdated,
	}
}

func mapToListResponse(items []LeaveBalance) []BalanceResponse {
	resp := make([]BalanceResponse, 0, len(items))
	for _, b := range items {
		resp = append(resp, mapToResponse(b))
	}
	return resp
}
