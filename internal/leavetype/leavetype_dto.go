package leavetype

type CreateLeaveTypeRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	MaxDays          int    `json:"max_days" binding:"required,min=1,max=366"`
	CanCarryForward  bool   `json:"can_carry_forward"`
	RequiresApproval *bool  `json:"requires_approval"`
	Description      string `json:"description"`
}

type UpdateLeaveTypeRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	MaxDays          int    `json:"max_days" binding:"required,min=1,max=366"`
	CanCarryForward  bool   `json:"can_carry_forward"`
	RequiresApproval bool   `json:"requires_approval"`
	Description      string `json:"description"`
}

type LeaveTypeResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MaxDays          int    `json:"max_days"`
	CanCarryForward  bool   `json:"can_carry_forward"`
	RequiresApproval bool   `json:"requires_approval"`
	Description      string `json:"description,omitempty"`
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:               lt.ID.String(),
		Name:             lt.Name,
		MaxDays:          lt.MaxDays,
		CanCarryForward:  lt.CanCarryForward,
		RequiresApproval: lt.RequiresApproval,
		Description:      lt.Description,
	}
}

func mapToListResponse(items []LeaveType) []LeaveTypeResponse {
	resp := make([]LeaveTypeResponse, 0, len(items))
	for _, lt := range items {
		resp = append(resp, mapToResponse(lt))
	}
	return resp
}
