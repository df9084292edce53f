package domain

type EnforceRequest struct {
	EmployeeID string `json:"employee_id"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// Resources and actions gated by RBAC.
const (
	ResourceLeave     = "leave"
	ResourceBalance   = "balance"
	ResourceLeaveType = "leave_type"
	ResourceHoliday   = "holiday"
	ResourceEmployee  = "employee"

	ActionRead       = "read"
	ActionCreate     = "create"
	ActionApprove    = "approve"
	ActionApproveAny = "approve_any"
	ActionManage     = "manage"
)
